package postgres

import (
	"context"

	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewPharmacyRepository creates a new pharmacy repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewPharmacyRepository() repository.PharmacyRepository {
	return NewPharmacyRepository(f.tx)
}

// NewDutyPeriodRepository creates a new duty period repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDutyPeriodRepository() repository.DutyPeriodRepository {
	return NewDutyPeriodRepository(f.tx)
}

// NewRatingRepository creates a new rating repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRatingRepository() repository.RatingRepository {
	return NewRatingRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction on the primary.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		if isConcurrencyFailure(err) || isExclusionViolation(err) {
			return domainerrors.ErrConcurrencyConflict.WrapMessage("transaction aborted by a concurrent write")
		}

		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
