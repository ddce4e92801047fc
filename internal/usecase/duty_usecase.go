package usecase

import (
	"context"
	"time"

	"pharmaduty/internal/domain/entity"

	"github.com/google/uuid"
)

// DutyStatus answers "is this pharmacy on duty at this instant".
type DutyStatus struct {
	PharmacyID uuid.UUID
	At         time.Time
	IsOnDuty   bool
	Periods    []*entity.DutyPeriod // periods covering At
}

// ScheduleDutyInput creates a duty period. PharmacyID may be omitted by an
// owner, it then defaults to the actor's own pharmacy.
type ScheduleDutyInput struct {
	PharmacyID *uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	Note       *string
}

// RescheduleDutyInput replaces the window and note of an existing period.
type RescheduleDutyInput struct {
	StartAt time.Time
	EndAt   time.Time
	Note    *string
}

// ListDutyPeriodsInput filters the public duty calendar. Covering and
// Upcoming may be combined.
type ListDutyPeriodsInput struct {
	PharmacyID *uuid.UUID
	Covering   *time.Time
	Upcoming   bool
}

// DutyUsecase defines the duty schedule operations.
type DutyUsecase interface {
	// GetDutyStatus evaluates the pharmacy at at, or now when at is nil.
	GetDutyStatus(ctx context.Context, pharmacyID uuid.UUID, at *time.Time) (*DutyStatus, error)

	// ScheduleDuty creates a period after checking it overlaps none of the pharmacy's periods.
	ScheduleDuty(ctx context.Context, actor *entity.Actor, input *ScheduleDutyInput) (*entity.DutyPeriod, error)

	// RescheduleDuty moves a period. The period itself is ignored by the overlap check.
	RescheduleDuty(ctx context.Context, actor *entity.Actor, periodID uuid.UUID, input *RescheduleDutyInput) (*entity.DutyPeriod, error)

	// CancelDuty deletes a period.
	CancelDuty(ctx context.Context, actor *entity.Actor, periodID uuid.UUID) error

	// ListDutyPeriods returns periods ordered by start.
	ListDutyPeriods(ctx context.Context, input *ListDutyPeriodsInput) ([]*entity.DutyPeriod, error)
}
