// Package persistence selects the storage backend behind the repository interfaces.
package persistence

import (
	"log/slog"

	"pharmaduty/config"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/errors"
	"pharmaduty/internal/infra/persistence/memory"
	"pharmaduty/internal/infra/persistence/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// Repositories are the repositories of the configured backend.
type Repositories struct {
	fx.Out

	PharmacyRepo repository.PharmacyRepository
	DutyRepo     repository.DutyPeriodRepository
	RatingRepo   repository.RatingRepository
	FeedbackRepo repository.FeedbackRepository
	TxManager    repository.TransactionManager
}

// New builds the repositories for storage.driver.
func New(params Params) (Repositories, error) {
	driver := config.DefaultStorageDriver
	if params.Config.Storage != nil {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			PharmacyRepo: memory.NewPharmacyRepository(store),
			DutyRepo:     memory.NewDutyPeriodRepository(store),
			RatingRepo:   memory.NewRatingRepository(store),
			FeedbackRepo: memory.NewFeedbackRepository(store),
			TxManager:    memory.NewTransactionManager(store),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
			Registry:  params.Registry,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			PharmacyRepo: postgres.NewPharmacyRepository(db),
			DutyRepo:     postgres.NewDutyPeriodRepository(db),
			RatingRepo:   postgres.NewRatingRepository(db),
			FeedbackRepo: postgres.NewFeedbackRepository(db),
			TxManager:    postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", driver)
	}
}
