// Package usecase declares the application operations exposed to the delivery layer.
package usecase

import (
	"context"
	"time"

	"pharmaduty/internal/domain/discovery"
)

// SearchInput holds the optional discovery parameters. A coordinate is only
// used when both Latitude and Longitude are set.
type SearchInput struct {
	Search    string
	City      string
	District  string
	At        *time.Time
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
	DutyOnly  bool
	SortBy    string
	Page      int
	PageSize  int
}

// DiscoveryUsecase defines the public pharmacy search.
type DiscoveryUsecase interface {
	// Search returns one page of approved pharmacies matching input.
	Search(ctx context.Context, input *SearchInput) (*discovery.Result, error)
}
