// Package duty evaluates duty coverage and overlap between duty periods.
package duty

import (
	"time"

	"pharmaduty/internal/domain/entity"

	"github.com/google/uuid"
)

// IsOnDuty reports whether some period contains at, bounds included.
func IsOnDuty(periods []*entity.DutyPeriod, at time.Time) bool {
	for _, p := range periods {
		if p != nil && p.Contains(at) {
			return true
		}
	}

	return false
}

// FilterOnDuty returns the pharmacies whose preloaded periods cover at.
// Order is preserved and nil entries are skipped.
func FilterOnDuty(pharmacies []*entity.Pharmacy, at time.Time) []*entity.Pharmacy {
	result := make([]*entity.Pharmacy, 0, len(pharmacies))
	for _, p := range pharmacies {
		if p != nil && IsOnDuty(p.DutyPeriods, at) {
			result = append(result, p)
		}
	}

	return result
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and [bStart, bEnd] intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// FindConflicts returns the ids of the periods that overlap [start, end],
// ignoring exclude (the period being rescheduled, or uuid.Nil).
func FindConflicts(existing []*entity.DutyPeriod, start, end time.Time, exclude uuid.UUID) []uuid.UUID {
	var conflicts []uuid.UUID
	for _, p := range existing {
		if p == nil || (exclude != uuid.Nil && p.ID == exclude) {
			continue
		}
		if p.Overlaps(start, end) {
			conflicts = append(conflicts, p.ID)
		}
	}

	return conflicts
}

// ValidWindow reports whether end is strictly after start.
func ValidWindow(start, end time.Time) bool {
	return end.After(start)
}
