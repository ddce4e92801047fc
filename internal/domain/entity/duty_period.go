package entity

import (
	"time"

	"github.com/google/uuid"
)

// DutyPeriod is a closed interval [StartAt, EndAt] during which a pharmacy is on call.
type DutyPeriod struct {
	ID         uuid.UUID
	PharmacyID uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Contains reports whether at falls inside the period, bounds included.
func (d *DutyPeriod) Contains(at time.Time) bool {
	return !at.Before(d.StartAt) && !at.After(d.EndAt)
}

// Overlaps reports whether the period intersects [start, end]. Touching
// endpoints count as an overlap.
func (d *DutyPeriod) Overlaps(start, end time.Time) bool {
	return !d.StartAt.After(end) && !d.EndAt.Before(start)
}
