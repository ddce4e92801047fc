package usecase

import (
	"context"

	"pharmaduty/internal/domain/entity"

	"github.com/google/uuid"
)

// RateInput is an anonymous rating submission. Origin is the client network
// address the anonymous id is derived from.
type RateInput struct {
	PharmacyID uuid.UUID
	Score      int
	Comment    *string
	Origin     string
}

// RatingUsecase defines rating submission and moderation.
type RatingUsecase interface {
	// RateScore creates the rating, or updates the one left earlier from the
	// same origin. created reports which happened.
	RateScore(ctx context.Context, input *RateInput) (rating *entity.Rating, created bool, err error)

	// SetApproval moderates a rating. Admin only.
	SetApproval(ctx context.Context, actor *entity.Actor, ratingID uuid.UUID, approved bool) (*entity.Rating, error)
}
