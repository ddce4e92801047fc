package memory

import (
	"context"
	"slices"
	"time"

	"pharmaduty/internal/domain/duty"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type dutyPeriodRepository struct {
	store *Store
	tx    *txState
}

// NewDutyPeriodRepository returns a DutyPeriodRepository reading and writing store outside any transaction.
func NewDutyPeriodRepository(store *Store) repository.DutyPeriodRepository {
	return &dutyPeriodRepository{store: store}
}

func (repo *dutyPeriodRepository) FindDutyPeriodByID(_ context.Context, id uuid.UUID) (*entity.DutyPeriod, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	period, ok := repo.store.dutyPeriods[id]
	if !ok {
		return nil, repository.ErrDutyPeriodNotFound
	}

	return cloneDutyPeriod(period), nil
}

func (repo *dutyPeriodRepository) ListDutyPeriods(_ context.Context, filter repository.DutyPeriodFilter) ([]*entity.DutyPeriod, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	periods := make([]*entity.DutyPeriod, 0)
	for _, period := range repo.store.dutyPeriods {
		if filter.PharmacyID != nil && period.PharmacyID != *filter.PharmacyID {
			continue
		}
		if filter.Covering != nil && !period.Contains(*filter.Covering) {
			continue
		}
		if filter.EndingAfter != nil && period.EndAt.Before(*filter.EndingAfter) {
			continue
		}
		periods = append(periods, cloneDutyPeriod(period))
	}

	sortByStart(periods)

	return page(periods, 0, filter.Limit), nil
}

func (repo *dutyPeriodRepository) FindOverlapping(_ context.Context, pharmacyID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*entity.DutyPeriod, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.overlappingLocked(pharmacyID, start, end, excludeID), nil
}

func (repo *dutyPeriodRepository) overlappingLocked(pharmacyID uuid.UUID, start, end time.Time, excludeID uuid.UUID) []*entity.DutyPeriod {
	periods := make([]*entity.DutyPeriod, 0)
	for _, period := range repo.store.dutyPeriods {
		if period.PharmacyID != pharmacyID || period.ID == excludeID {
			continue
		}
		if period.Overlaps(start, end) {
			periods = append(periods, cloneDutyPeriod(period))
		}
	}

	sortByStart(periods)

	return periods
}

// CreateDutyPeriod rejects overlapping windows the same way the database exclusion constraint does.
func (repo *dutyPeriodRepository) CreateDutyPeriod(_ context.Context, period *entity.DutyPeriod) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if err := repo.checkWriteLocked(period, uuid.Nil); err != nil {
		return err
	}

	if period.ID == uuid.Nil {
		period.ID = uuid.New()
	}

	now := repo.store.now()
	period.CreatedAt = now
	period.UpdatedAt = now

	repo.store.dutyPeriods[period.ID] = cloneDutyPeriod(period)

	id := period.ID
	repo.tx.record(func() { delete(repo.store.dutyPeriods, id) })

	return nil
}

func (repo *dutyPeriodRepository) UpdateDutyPeriod(_ context.Context, period *entity.DutyPeriod) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.dutyPeriods[period.ID]
	if !ok {
		return repository.ErrDutyPeriodNotFound
	}

	if err := repo.checkWriteLocked(period, period.ID); err != nil {
		return err
	}

	previous := cloneDutyPeriod(stored)

	updated := cloneDutyPeriod(stored)
	updated.StartAt = period.StartAt
	updated.EndAt = period.EndAt
	updated.Note = period.Note
	updated.UpdatedAt = repo.store.now()

	repo.store.dutyPeriods[period.ID] = updated
	period.UpdatedAt = updated.UpdatedAt

	repo.tx.record(func() { repo.store.dutyPeriods[previous.ID] = previous })

	return nil
}

func (repo *dutyPeriodRepository) DeleteDutyPeriod(_ context.Context, id uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.dutyPeriods[id]
	if !ok {
		return repository.ErrDutyPeriodNotFound
	}

	delete(repo.store.dutyPeriods, id)
	repo.tx.record(func() { repo.store.dutyPeriods[id] = stored })

	return nil
}

func (repo *dutyPeriodRepository) checkWriteLocked(period *entity.DutyPeriod, excludeID uuid.UUID) error {
	if _, ok := repo.store.pharmacies[period.PharmacyID]; !ok {
		return errors.WithStack(repository.ErrPharmacyNotFound)
	}
	if !duty.ValidWindow(period.StartAt, period.EndAt) {
		return errors.New("duty period must start before it ends")
	}
	if len(repo.overlappingLocked(period.PharmacyID, period.StartAt, period.EndAt, excludeID)) > 0 {
		return errors.WithStack(repository.ErrDutyPeriodConflict)
	}

	return nil
}

func sortByStart(periods []*entity.DutyPeriod) {
	sortByID(periods, func(p *entity.DutyPeriod) uuid.UUID { return p.ID })
	slices.SortStableFunc(periods, func(a, b *entity.DutyPeriod) int {
		return a.StartAt.Compare(b.StartAt)
	})
}
