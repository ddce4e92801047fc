package memory

import (
	"context"
	"slices"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type feedbackRepository struct {
	store *Store
}

// NewFeedbackRepository returns a FeedbackRepository backed by store.
func NewFeedbackRepository(store *Store) repository.FeedbackRepository {
	return &feedbackRepository{store: store}
}

func (repo *feedbackRepository) CreateFeedback(_ context.Context, feedback *entity.Feedback) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if feedback.PharmacyID != nil {
		if _, ok := repo.store.pharmacies[*feedback.PharmacyID]; !ok {
			return errors.WithStack(repository.ErrPharmacyNotFound)
		}
	}

	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	if feedback.Status == "" {
		feedback.Status = entity.FeedbackStatusPending
	}

	now := repo.store.now()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now

	repo.store.feedbacks[feedback.ID] = cloneFeedback(feedback)

	return nil
}

func (repo *feedbackRepository) ListFeedbacks(_ context.Context, filter repository.FeedbackFilter) ([]*entity.Feedback, int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	matches := make([]*entity.Feedback, 0)
	for _, feedback := range repo.store.feedbacks {
		if filter.Status != nil && feedback.Status != *filter.Status {
			continue
		}
		if filter.PharmacyID != nil && (feedback.PharmacyID == nil || *feedback.PharmacyID != *filter.PharmacyID) {
			continue
		}
		matches = append(matches, cloneFeedback(feedback))
	}

	sortByID(matches, func(f *entity.Feedback) uuid.UUID { return f.ID })
	slices.SortStableFunc(matches, func(a, b *entity.Feedback) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return page(matches, filter.Offset, filter.Limit), int64(len(matches)), nil
}

func (repo *feedbackRepository) UpdateFeedbackStatus(_ context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.feedbacks[id]
	if !ok {
		return nil, repository.ErrFeedbackNotFound
	}

	stored.Status = status
	stored.UpdatedAt = repo.store.now()

	return cloneFeedback(stored), nil
}
