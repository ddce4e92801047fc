package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pharmaduty/config"
	"pharmaduty/internal/domain/lifecycle"
	"pharmaduty/internal/errors"
	"pharmaduty/internal/infra/persistence/migrations"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
	dbStatsCollectorName        = "pharmaduty"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// New opens the PostgreSQL connection (primary plus replicas), pings it on
// start, applies migrations when storage.runMigrations is set and closes it on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	var slowThreshold time.Duration
	if params.Config.Storage != nil {
		slowThreshold = params.Config.Storage.SlowQueryThreshold
	}
	db = db.Session(&gorm.Session{
		// Explicit transactions only, through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug, slowThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil {
		if err := params.Registry.Register(collectors.NewDBStatsCollector(sqlDB, dbStatsCollectorName)); err != nil {
			return nil, errors.Wrap(err, "failed to register database stats collector")
		}
	}

	runMigrations := params.Config.Storage != nil && params.Config.Storage.RunMigrations
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if runMigrations {
				if err := migrations.Up(db, params.Logger); err != nil {
					return err
				}
			}

			go newPoolMonitor(params.Logger, sqlDB).run(monitorCtx, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolMonitor logs when requests had to wait for a pooled connection.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, sqlDB *sql.DB) *poolMonitor {
	return &poolMonitor{logger: logger, stats: sqlDB.Stats}
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	if m.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the waits that happened between prev and cur, at warn level
// once they add up to dbPoolWarnDurationThreshold.
func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if waited >= dbPoolWarnDurationThreshold {
		level, msg = slog.LevelWarn, "Postgres pool wait detected"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("wait_count", waits),
		slog.Duration("wait_duration", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	)
}
