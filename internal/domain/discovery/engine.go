// Package discovery filters, annotates, ranks and paginates pharmacy candidates.
package discovery

import (
	"cmp"
	"math"
	"slices"
	"time"

	"pharmaduty/internal/domain/duty"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/geo"
	"pharmaduty/internal/domain/rating"
	"pharmaduty/internal/util"

	"github.com/paulmach/orb"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortBy selects the ordering of search results.
type SortBy string

const (
	SortByName     SortBy = "name"
	SortByDistance SortBy = "distance"
	SortByRating   SortBy = "rating"
)

// ParseSortBy maps user input to a SortBy, falling back to name.
func ParseSortBy(s string) SortBy {
	switch SortBy(s) {
	case SortByDistance, SortByRating:
		return SortBy(s)
	default:
		return SortByName
	}
}

const (
	DefaultPage     = 1
	DefaultPageSize = 20

	// MaxPage bounds the requested page number.
	MaxPage = math.MaxInt32
)

// Criteria are the optional search parameters. A nil At means "now" as
// given by the engine clock.
type Criteria struct {
	Search   string
	City     string
	District string
	At       *time.Time
	Origin   *orb.Point // requester coordinate (lon, lat)
	RadiusKm *float64
	DutyOnly bool
	SortBy   SortBy
	Page     int
	PageSize int
}

// Item is a pharmacy annotated for display.
type Item struct {
	Pharmacy      *entity.Pharmacy
	AverageRating float64
	RatingCount   int
	IsOnDuty      bool
	DistanceKm    *float64
}

// Pagination describes the returned page.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Result is one page of annotated pharmacies.
type Result struct {
	Items      []Item
	Pagination Pagination
	At         time.Time
}

// Engine runs searches over an in-memory candidate set. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	locale      language.Tag
	now         func() time.Time
	maxPageSize int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the collation locale used for name ordering.
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) {
		e.locale = tag
	}
}

// WithClock sets the source of "now" used when Criteria.At is nil.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMaxPageSize caps the page size. Zero disables the cap.
func WithMaxPageSize(n int) Option {
	return func(e *Engine) {
		e.maxPageSize = max(n, 0)
	}
}

// NewEngine returns an engine ordering names with the French collation by default.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		locale: language.French,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Search applies, in order: approval filter, text filters, annotation,
// duty-only filter, radius filter, stable sort and pagination.
func (e *Engine) Search(candidates []*entity.Pharmacy, c Criteria) Result {
	at := e.now()
	if c.At != nil {
		at = *c.At
	}
	page, pageSize := e.normalizePage(c.Page, c.PageSize)

	items := make([]Item, 0, len(candidates))
	for _, p := range candidates {
		if p == nil || !p.IsApproved() || !matchesText(p, c) {
			continue
		}

		item := annotate(p, at, c.Origin)

		if c.DutyOnly && !item.IsOnDuty {
			continue
		}
		if c.RadiusKm != nil && c.Origin != nil {
			if item.DistanceKm == nil || *item.DistanceKm > *c.RadiusKm {
				continue
			}
		}

		items = append(items, item)
	}

	e.sort(items, c)

	total := len(items)
	pageItems := []Item{}
	if skip := util.PageOffset(page, pageSize); skip < total {
		pageItems = items[skip : skip+min(pageSize, total-skip)]
	}

	return Result{
		Items: pageItems,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: util.CeilDiv(total, pageSize),
		},
		At: at,
	}
}

func (e *Engine) normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	page = min(page, MaxPage)
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if e.maxPageSize > 0 && pageSize > e.maxPageSize {
		pageSize = e.maxPageSize
	}

	return page, pageSize
}

func matchesText(p *entity.Pharmacy, c Criteria) bool {
	if c.Search != "" &&
		!util.ContainsFold(p.Name, c.Search) &&
		!util.ContainsFold(p.Address, c.Search) &&
		!util.ContainsFold(p.City, c.Search) {
		return false
	}
	if c.City != "" && !util.ContainsFold(p.City, c.City) {
		return false
	}
	if c.District != "" && !util.ContainsFold(util.DerefString(p.District), c.District) {
		return false
	}

	return true
}

func annotate(p *entity.Pharmacy, at time.Time, origin *orb.Point) Item {
	summary := rating.Aggregate(p.Ratings)
	item := Item{
		Pharmacy:      p,
		AverageRating: summary.Average,
		RatingCount:   summary.Count,
		IsOnDuty:      duty.IsOnDuty(p.DutyPeriods, at),
	}
	if origin != nil {
		d := geo.DistanceKm(origin.Lat(), origin.Lon(), p.Latitude, p.Longitude)
		item.DistanceKm = &d
	}

	return item
}

func (e *Engine) sort(items []Item, c Criteria) {
	switch {
	case c.SortBy == SortByDistance && c.Origin != nil:
		slices.SortStableFunc(items, compareDistance)
	case c.SortBy == SortByRating:
		slices.SortStableFunc(items, func(a, b Item) int {
			return cmp.Compare(b.AverageRating, a.AverageRating)
		})
	default:
		// collate.Collator keeps internal buffers and is not safe to share.
		collator := collate.New(e.locale)
		slices.SortStableFunc(items, func(a, b Item) int {
			return collator.CompareString(a.Pharmacy.Name, b.Pharmacy.Name)
		})
	}
}

// compareDistance orders ascending with unknown distances last.
func compareDistance(a, b Item) int {
	switch {
	case a.DistanceKm == nil && b.DistanceKm == nil:
		return 0
	case a.DistanceKm == nil:
		return 1
	case b.DistanceKm == nil:
		return -1
	default:
		return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
	}
}
