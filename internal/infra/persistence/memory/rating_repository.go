package memory

import (
	"context"
	"slices"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type ratingRepository struct {
	store *Store
	tx    *txState
}

// NewRatingRepository returns a RatingRepository reading and writing store outside any transaction.
func NewRatingRepository(store *Store) repository.RatingRepository {
	return &ratingRepository{store: store}
}

func (repo *ratingRepository) FindRatingByID(_ context.Context, id uuid.UUID) (*entity.Rating, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	rating, ok := repo.store.ratings[id]
	if !ok {
		return nil, repository.ErrRatingNotFound
	}

	return cloneRating(rating), nil
}

func (repo *ratingRepository) FindRatingByAnonymousID(_ context.Context, pharmacyID uuid.UUID, anonymousID string) (*entity.Rating, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	if rating := repo.findByAnonymousLocked(pharmacyID, anonymousID); rating != nil {
		return cloneRating(rating), nil
	}

	return nil, repository.ErrRatingNotFound
}

func (repo *ratingRepository) findByAnonymousLocked(pharmacyID uuid.UUID, anonymousID string) *entity.Rating {
	for _, rating := range repo.store.ratings {
		if rating.PharmacyID == pharmacyID && rating.AnonymousID == anonymousID {
			return rating
		}
	}

	return nil
}

func (repo *ratingRepository) ListApprovedRatings(_ context.Context, pharmacyID uuid.UUID, limit int) ([]*entity.Rating, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	ratings := make([]*entity.Rating, 0)
	for _, rating := range repo.store.ratings {
		if rating.PharmacyID == pharmacyID && rating.Approved {
			ratings = append(ratings, cloneRating(rating))
		}
	}

	sortByID(ratings, func(r *entity.Rating) uuid.UUID { return r.ID })
	slices.SortStableFunc(ratings, func(a, b *entity.Rating) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return page(ratings, 0, limit), nil
}

func (repo *ratingRepository) CreateRating(_ context.Context, rating *entity.Rating) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.pharmacies[rating.PharmacyID]; !ok {
		return errors.WithStack(repository.ErrPharmacyNotFound)
	}
	if repo.findByAnonymousLocked(rating.PharmacyID, rating.AnonymousID) != nil {
		return errors.WithStack(repository.ErrRatingConflict)
	}

	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}

	now := repo.store.now()
	rating.CreatedAt = now
	rating.UpdatedAt = now

	repo.store.ratings[rating.ID] = cloneRating(rating)

	id := rating.ID
	repo.tx.record(func() { delete(repo.store.ratings, id) })

	return nil
}

func (repo *ratingRepository) UpdateRating(_ context.Context, rating *entity.Rating) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.ratings[rating.ID]
	if !ok {
		return repository.ErrRatingNotFound
	}

	previous := cloneRating(stored)

	updated := cloneRating(stored)
	updated.Score = rating.Score
	updated.Comment = rating.Comment
	updated.Approved = rating.Approved
	updated.UpdatedAt = repo.store.now()

	repo.store.ratings[rating.ID] = updated
	rating.UpdatedAt = updated.UpdatedAt

	repo.tx.record(func() { repo.store.ratings[previous.ID] = previous })

	return nil
}

func (repo *ratingRepository) SetRatingApproval(_ context.Context, id uuid.UUID, approved bool) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.ratings[id]
	if !ok {
		return repository.ErrRatingNotFound
	}

	previous := cloneRating(stored)

	updated := cloneRating(stored)
	updated.Approved = approved
	updated.UpdatedAt = repo.store.now()
	repo.store.ratings[id] = updated

	repo.tx.record(func() { repo.store.ratings[id] = previous })

	return nil
}
