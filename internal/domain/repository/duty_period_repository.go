package repository

import (
	"context"
	"time"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for duty period persistence.
var (
	// ErrDutyPeriodNotFound is returned when a duty period is not found.
	ErrDutyPeriodNotFound = errors.New("duty period not found")
	// ErrDutyPeriodConflict is returned when the store itself rejects an
	// overlapping or concurrently modified period at commit time.
	ErrDutyPeriodConflict = errors.New("duty period write conflict")
)

// DutyPeriodFilter selects duty periods. Zero values mean "no constraint".
type DutyPeriodFilter struct {
	PharmacyID *uuid.UUID
	// Covering keeps periods containing this instant.
	Covering *time.Time
	// EndingAfter keeps periods whose end is at or after this instant.
	EndingAfter *time.Time
	Limit       int
}

// DutyPeriodRepository defines the interface for duty period operations.
type DutyPeriodRepository interface {
	FindDutyPeriodByID(ctx context.Context, id uuid.UUID) (*entity.DutyPeriod, error)

	// ListDutyPeriods returns periods ordered by start ascending.
	ListDutyPeriods(ctx context.Context, filter DutyPeriodFilter) ([]*entity.DutyPeriod, error)

	// FindOverlapping returns the periods of pharmacyID that intersect
	// [start, end] inclusively, ignoring excludeID when not uuid.Nil.
	FindOverlapping(ctx context.Context, pharmacyID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*entity.DutyPeriod, error)

	CreateDutyPeriod(ctx context.Context, period *entity.DutyPeriod) error
	UpdateDutyPeriod(ctx context.Context, period *entity.DutyPeriod) error
	DeleteDutyPeriod(ctx context.Context, id uuid.UUID) error
}
