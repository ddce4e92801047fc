package repository

import (
	"context"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/errors"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackFilter selects feedback for the back office.
type FeedbackFilter struct {
	Status     *entity.FeedbackStatus
	PharmacyID *uuid.UUID
	Offset     int
	Limit      int
}

// FeedbackRepository defines the interface for feedback operations.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) error

	// ListFeedbacks returns a page ordered newest first, and the total.
	ListFeedbacks(ctx context.Context, filter FeedbackFilter) ([]*entity.Feedback, int64, error)

	UpdateFeedbackStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error)
}
