// Package migrations applies the embedded PostgreSQL schema.
package migrations

import (
	"embed"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	_ "github.com/lib/pq"
)

//go:embed sql/*.sql
var schemaFS embed.FS

// Up applies every pending migration. It is a no-op when the schema is current.
func Up(db *gorm.DB, logger *slog.Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "applying migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "reading migration version")
	}

	logger.Info("Migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

// Down rolls back every migration.
func Down(db *gorm.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "reverting migrations")
	}

	return nil
}

func newMigrate(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB from gorm.DB")
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "creating postgres driver")
	}

	source, err := iofs.New(schemaFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "opening embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "creating migrate instance")
	}

	return m, nil
}
