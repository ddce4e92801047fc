package usecase

import (
	"context"

	"pharmaduty/internal/domain/discovery"
	"pharmaduty/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackInput is a visitor message, optionally about a pharmacy.
type FeedbackInput struct {
	Message    string
	Email      *string
	PharmacyID *uuid.UUID
}

// ListFeedbackInput filters the feedback inbox.
type ListFeedbackInput struct {
	Status     *entity.FeedbackStatus
	PharmacyID *uuid.UUID
	Page       int
	PageSize   int
}

// FeedbackPage is one page of the feedback inbox.
type FeedbackPage struct {
	Feedbacks  []*entity.Feedback
	Pagination discovery.Pagination
}

// FeedbackUsecase defines feedback submission and triage.
type FeedbackUsecase interface {
	Submit(ctx context.Context, input *FeedbackInput) (*entity.Feedback, error)

	// List is admin only.
	List(ctx context.Context, actor *entity.Actor, input *ListFeedbackInput) (*FeedbackPage, error)

	// SetStatus is admin only.
	SetStatus(ctx context.Context, actor *entity.Actor, feedbackID uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error)
}
