package memory

import (
	"context"
	"slices"
	"strings"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/geo"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pharmacyRepository struct {
	store *Store
	tx    *txState
}

// NewPharmacyRepository returns a PharmacyRepository reading and writing store outside any transaction.
func NewPharmacyRepository(store *Store) repository.PharmacyRepository {
	return &pharmacyRepository{store: store}
}

func (repo *pharmacyRepository) FindPharmacyByID(_ context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	pharmacy, ok := repo.store.pharmacies[id]
	if !ok {
		return nil, repository.ErrPharmacyNotFound
	}

	return clonePharmacy(pharmacy), nil
}

func (repo *pharmacyRepository) FindPharmacyByOwner(_ context.Context, ownerID uuid.UUID) (*entity.Pharmacy, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, pharmacy := range repo.store.pharmacies {
		if pharmacy.IsOwnedBy(ownerID) {
			return clonePharmacy(pharmacy), nil
		}
	}

	return nil, repository.ErrPharmacyNotFound
}

func (repo *pharmacyRepository) ListPharmacies(_ context.Context, filter repository.PharmacyFilter) ([]*entity.Pharmacy, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	pharmacies := make([]*entity.Pharmacy, 0, len(repo.store.pharmacies))
	for _, stored := range repo.store.pharmacies {
		if filter.Status != nil && stored.Status != *filter.Status {
			continue
		}
		if filter.Bound != nil && !geo.BoundContains(*filter.Bound, stored.Location()) {
			continue
		}

		pharmacy := clonePharmacy(stored)

		if filter.DutyPeriodsAt != nil {
			pharmacy.DutyPeriods = make([]*entity.DutyPeriod, 0)
			for _, period := range repo.store.dutyPeriods {
				if period.PharmacyID == pharmacy.ID && period.Contains(*filter.DutyPeriodsAt) {
					pharmacy.DutyPeriods = append(pharmacy.DutyPeriods, cloneDutyPeriod(period))
				}
			}
		}

		if filter.WithApprovedRatings {
			pharmacy.Ratings = make([]*entity.Rating, 0)
			for _, rating := range repo.store.ratings {
				if rating.PharmacyID == pharmacy.ID && rating.Approved {
					pharmacy.Ratings = append(pharmacy.Ratings, cloneRating(rating))
				}
			}
		}

		pharmacies = append(pharmacies, pharmacy)
	}

	sortByID(pharmacies, func(p *entity.Pharmacy) uuid.UUID { return p.ID })

	return pharmacies, nil
}

func (repo *pharmacyRepository) ListPharmaciesForAdmin(_ context.Context, filter repository.AdminPharmacyFilter) ([]*entity.Pharmacy, int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	search := strings.TrimSpace(filter.Search)

	matches := make([]*entity.Pharmacy, 0)
	for _, stored := range repo.store.pharmacies {
		if filter.Status != nil && stored.Status != *filter.Status {
			continue
		}
		if search != "" &&
			!util.ContainsFold(stored.Name, search) &&
			!util.ContainsFold(stored.City, search) &&
			!util.ContainsFold(stored.Address, search) {
			continue
		}
		matches = append(matches, clonePharmacy(stored))
	}

	slices.SortStableFunc(matches, func(a, b *entity.Pharmacy) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return page(matches, filter.Offset, filter.Limit), int64(len(matches)), nil
}

func (repo *pharmacyRepository) CountPharmaciesByStatus(_ context.Context) (map[entity.PharmacyStatus]int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	counts := make(map[entity.PharmacyStatus]int64, len(entity.PharmacyStatuses()))
	for _, status := range entity.PharmacyStatuses() {
		counts[status] = 0
	}
	for _, pharmacy := range repo.store.pharmacies {
		counts[pharmacy.Status]++
	}

	return counts, nil
}

func (repo *pharmacyRepository) CreatePharmacy(_ context.Context, pharmacy *entity.Pharmacy) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if pharmacy.OwnerID != nil {
		for _, existing := range repo.store.pharmacies {
			if existing.IsOwnedBy(*pharmacy.OwnerID) {
				return errors.WithStack(repository.ErrPharmacyOwnerConflict)
			}
		}
	}

	if pharmacy.ID == uuid.Nil {
		pharmacy.ID = uuid.New()
	}
	if _, exists := repo.store.pharmacies[pharmacy.ID]; exists {
		return errors.Errorf("pharmacy %s already exists", pharmacy.ID)
	}
	if pharmacy.Status == "" {
		pharmacy.Status = entity.PharmacyStatusPending
	}

	now := repo.store.now()
	pharmacy.CreatedAt = now
	pharmacy.UpdatedAt = now

	repo.store.pharmacies[pharmacy.ID] = clonePharmacy(pharmacy)

	id := pharmacy.ID
	repo.tx.record(func() { delete(repo.store.pharmacies, id) })

	return nil
}

func (repo *pharmacyRepository) UpdatePharmacy(_ context.Context, pharmacy *entity.Pharmacy) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.pharmacies[pharmacy.ID]
	if !ok {
		return repository.ErrPharmacyNotFound
	}

	previous := clonePharmacy(stored)

	updated := clonePharmacy(stored)
	updated.Name = pharmacy.Name
	updated.Address = pharmacy.Address
	updated.City = pharmacy.City
	updated.District = pharmacy.District
	updated.Phone = pharmacy.Phone
	updated.Email = pharmacy.Email
	updated.Description = pharmacy.Description
	updated.Latitude = pharmacy.Latitude
	updated.Longitude = pharmacy.Longitude
	updated.OpeningHours = slices.Clone(pharmacy.OpeningHours)
	updated.UpdatedAt = repo.store.now()

	repo.store.pharmacies[pharmacy.ID] = updated
	pharmacy.UpdatedAt = updated.UpdatedAt

	repo.tx.record(func() { repo.store.pharmacies[previous.ID] = previous })

	return nil
}

func (repo *pharmacyRepository) UpdatePharmacyStatus(_ context.Context, ids []uuid.UUID, status entity.PharmacyStatus) (int64, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := repo.store.now()

	var updated int64
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		stored, ok := repo.store.pharmacies[id]
		if !ok {
			continue
		}

		previous := clonePharmacy(stored)
		stored.Status = status
		stored.UpdatedAt = now
		updated++

		repo.tx.record(func() { repo.store.pharmacies[previous.ID] = previous })
	}

	return updated, nil
}

func (repo *pharmacyRepository) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.pharmacies[id]
	if !ok {
		return repository.ErrPharmacyNotFound
	}

	stored.ViewCount++
	repo.tx.record(func() {
		if p, ok := repo.store.pharmacies[id]; ok {
			p.ViewCount--
		}
	})

	return nil
}

// LockPharmacy holds a per-pharmacy mutex until the transaction ends.
// Outside a transaction it behaves like FindPharmacyByID.
func (repo *pharmacyRepository) LockPharmacy(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	if repo.tx != nil {
		if _, held := repo.tx.held[id]; !held {
			lock := repo.store.pharmacyLock(id)
			lock.Lock()
			repo.tx.held[id] = lock
		}
	}

	return repo.FindPharmacyByID(ctx, id)
}
