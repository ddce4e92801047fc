package impl

import (
	"context"
	"time"

	"pharmaduty/config"
	"pharmaduty/internal/domain/discovery"
	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/geo"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	pharmacyRepo        repository.PharmacyRepository
	engine              *discovery.Engine
	clock               service.Clock
	metrics             service.Metrics
	defaultPageSize     int
	preFilterMultiplier float64
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	PharmacyRepo repository.PharmacyRepository
	Clock        service.Clock
	Metrics      service.Metrics
	Config       *config.Config
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	cfg := params.Config.Discovery
	if cfg == nil {
		cfg = &config.DiscoveryConfig{
			DefaultPageSize:           config.DefaultPageSize,
			MaxPageSize:               config.DefaultMaxPageSize,
			CollationLocale:           config.DefaultCollationLocale,
			PreFilterRadiusMultiplier: config.DefaultPreFilterRadiusMultiplier,
		}
	}

	return &discoveryService{
		pharmacyRepo: params.PharmacyRepo,
		engine: discovery.NewEngine(
			discovery.WithLocale(language.Make(cfg.CollationLocale)),
			discovery.WithMaxPageSize(cfg.MaxPageSize),
			discovery.WithClock(params.Clock.Now),
		),
		clock:               params.Clock,
		metrics:             params.Metrics,
		defaultPageSize:     cfg.DefaultPageSize,
		preFilterMultiplier: cfg.PreFilterRadiusMultiplier,
	}
}

// Search loads approved candidates with their active duty periods and
// approved ratings, then lets the engine filter, rank and paginate them.
func (s *discoveryService) Search(ctx context.Context, input *usecase.SearchInput) (*discovery.Result, error) {
	started := time.Now()

	at := s.clock.Now()
	if input.At != nil {
		at = *input.At
	}

	origin, err := searchOrigin(input)
	if err != nil {
		return nil, err
	}
	if input.RadiusKm != nil && *input.RadiusKm < 0 {
		return nil, domainerrors.Invalid("radius", "must not be negative")
	}

	approved := entity.PharmacyStatusApproved
	filter := repository.PharmacyFilter{
		Status:              &approved,
		DutyPeriodsAt:       &at,
		WithApprovedRatings: true,
	}
	if origin != nil && input.RadiusKm != nil {
		bound := geo.BoundAround(*origin, *input.RadiusKm, s.preFilterMultiplier)
		filter.Bound = &bound
	}

	candidates, err := s.pharmacyRepo.ListPharmacies(ctx, filter)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to list pharmacies")
	}

	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}

	result := s.engine.Search(candidates, discovery.Criteria{
		Search:   input.Search,
		City:     input.City,
		District: input.District,
		At:       &at,
		Origin:   origin,
		RadiusKm: input.RadiusKm,
		DutyOnly: input.DutyOnly,
		SortBy:   discovery.ParseSortBy(input.SortBy),
		Page:     input.Page,
		PageSize: pageSize,
	})

	s.metrics.ObserveSearch(time.Since(started), result.Pagination.Total)

	return &result, nil
}

// searchOrigin returns the requester coordinate, or nil unless both parts are given.
func searchOrigin(input *usecase.SearchInput) (*orb.Point, error) {
	if input.Latitude == nil || input.Longitude == nil {
		return nil, nil //nolint:nilnil // no coordinate is a valid answer
	}

	lat, lon := *input.Latitude, *input.Longitude
	if !geo.ValidCoordinate(lat, lon) {
		return nil, domainerrors.NewValidationError(coordinateFields(lat, lon)...)
	}

	return &orb.Point{lon, lat}, nil
}
