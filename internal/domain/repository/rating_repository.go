package repository

import (
	"context"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRatingNotFound is returned when a rating is not found.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrRatingConflict is returned when a rating for the same anonymous id was inserted concurrently.
	ErrRatingConflict = errors.New("rating already exists for this anonymous id")
)

// RatingRepository defines the interface for rating operations.
type RatingRepository interface {
	FindRatingByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// FindRatingByAnonymousID returns ErrRatingNotFound when none exists.
	FindRatingByAnonymousID(ctx context.Context, pharmacyID uuid.UUID, anonymousID string) (*entity.Rating, error)

	// ListApprovedRatings returns approved ratings, newest first. A limit <= 0 returns all.
	ListApprovedRatings(ctx context.Context, pharmacyID uuid.UUID, limit int) ([]*entity.Rating, error)

	CreateRating(ctx context.Context, rating *entity.Rating) error
	UpdateRating(ctx context.Context, rating *entity.Rating) error
	SetRatingApproval(ctx context.Context, id uuid.UUID, approved bool) error
}
