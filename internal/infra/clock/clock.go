// Package clock provides the wall clock used to default "now".
package clock

import (
	"time"

	"pharmaduty/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock reading the host time in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock frozen at one instant.
type Fixed time.Time

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
