package handler

import (
	"encoding/json"
	"time"

	"pharmaduty/internal/domain/discovery"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/rating"
	"pharmaduty/internal/usecase"

	"github.com/google/uuid"
)

// PharmacyResponse is the public representation of a pharmacy.
type PharmacyResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Address      string                `json:"address"`
	City         string                `json:"city"`
	District     *string               `json:"district,omitempty"`
	Phone        string                `json:"phone"`
	Email        *string               `json:"email,omitempty"`
	Description  *string               `json:"description,omitempty"`
	Latitude     float64               `json:"latitude"`
	Longitude    float64               `json:"longitude"`
	OpeningHours json.RawMessage       `json:"openingHours,omitempty"`
	Status       entity.PharmacyStatus `json:"status"`
	ViewCount    int64                 `json:"viewCount"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// SearchItemResponse is one discovery result.
type SearchItemResponse struct {
	PharmacyResponse
	AverageRating float64  `json:"averageRating"`
	RatingCount   int      `json:"ratingCount"`
	IsOnDuty      bool     `json:"isOnDuty"`
	DistanceKm    *float64 `json:"distanceKm,omitempty"`
}

// SearchResponse is one page of discovery results evaluated at At.
type SearchResponse struct {
	At    time.Time            `json:"at"`
	Items []SearchItemResponse `json:"items"`
}

// DutyPeriodResponse is a duty period on the calendar.
type DutyPeriodResponse struct {
	ID         uuid.UUID `json:"id"`
	PharmacyID uuid.UUID `json:"pharmacyId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	Note       *string   `json:"note,omitempty"`
}

// DutyStatusResponse answers "is this pharmacy on duty at At".
type DutyStatusResponse struct {
	PharmacyID uuid.UUID            `json:"pharmacyId"`
	At         time.Time            `json:"at"`
	IsOnDuty   bool                 `json:"isOnDuty"`
	Periods    []DutyPeriodResponse `json:"periods"`
}

// RatingResponse hides the anonymous identifier.
type RatingResponse struct {
	ID         uuid.UUID `json:"id"`
	PharmacyID uuid.UUID `json:"pharmacyId"`
	Score      int       `json:"score"`
	Comment    *string   `json:"comment,omitempty"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProfileResponse is the public detail page of a pharmacy.
type ProfileResponse struct {
	Pharmacy        PharmacyResponse     `json:"pharmacy"`
	Rating          rating.Summary       `json:"rating"`
	RecentRatings   []RatingResponse     `json:"recentRatings"`
	UpcomingPeriods []DutyPeriodResponse `json:"upcomingPeriods"`
	IsOnDuty        bool                 `json:"isOnDuty"`
	At              time.Time            `json:"at"`
}

// FeedbackResponse is a visitor message as shown to administrators.
type FeedbackResponse struct {
	ID         uuid.UUID             `json:"id"`
	Message    string                `json:"message"`
	Email      *string               `json:"email,omitempty"`
	PharmacyID *uuid.UUID            `json:"pharmacyId,omitempty"`
	Status     entity.FeedbackStatus `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// AdminPharmaciesResponse is a page of the moderation queue.
type AdminPharmaciesResponse struct {
	Pharmacies   []PharmacyResponse              `json:"pharmacies"`
	StatusCounts map[entity.PharmacyStatus]int64 `json:"statusCounts"`
}

func toPharmacyResponse(p *entity.Pharmacy) PharmacyResponse {
	return PharmacyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		City:         p.City,
		District:     p.District,
		Phone:        p.Phone,
		Email:        p.Email,
		Description:  p.Description,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		OpeningHours: p.OpeningHours,
		Status:       p.Status,
		ViewCount:    p.ViewCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPharmacyResponses(pharmacies []*entity.Pharmacy) []PharmacyResponse {
	out := make([]PharmacyResponse, 0, len(pharmacies))
	for _, p := range pharmacies {
		out = append(out, toPharmacyResponse(p))
	}

	return out
}

func toSearchResponse(result *discovery.Result) SearchResponse {
	items := make([]SearchItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, SearchItemResponse{
			PharmacyResponse: toPharmacyResponse(item.Pharmacy),
			AverageRating:    item.AverageRating,
			RatingCount:      item.RatingCount,
			IsOnDuty:         item.IsOnDuty,
			DistanceKm:       item.DistanceKm,
		})
	}

	return SearchResponse{At: result.At, Items: items}
}

func toDutyPeriodResponse(d *entity.DutyPeriod) DutyPeriodResponse {
	return DutyPeriodResponse{
		ID:         d.ID,
		PharmacyID: d.PharmacyID,
		StartAt:    d.StartAt,
		EndAt:      d.EndAt,
		Note:       d.Note,
	}
}

func toDutyPeriodResponses(periods []*entity.DutyPeriod) []DutyPeriodResponse {
	out := make([]DutyPeriodResponse, 0, len(periods))
	for _, d := range periods {
		out = append(out, toDutyPeriodResponse(d))
	}

	return out
}

func toDutyStatusResponse(status *usecase.DutyStatus) DutyStatusResponse {
	return DutyStatusResponse{
		PharmacyID: status.PharmacyID,
		At:         status.At,
		IsOnDuty:   status.IsOnDuty,
		Periods:    toDutyPeriodResponses(status.Periods),
	}
}

func toRatingResponse(r *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:         r.ID,
		PharmacyID: r.PharmacyID,
		Score:      r.Score,
		Comment:    r.Comment,
		Approved:   r.Approved,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toProfileResponse(profile *usecase.PublicProfile) ProfileResponse {
	recent := make([]RatingResponse, 0, len(profile.RecentRatings))
	for _, r := range profile.RecentRatings {
		recent = append(recent, toRatingResponse(r))
	}

	return ProfileResponse{
		Pharmacy:        toPharmacyResponse(profile.Pharmacy),
		Rating:          profile.Rating,
		RecentRatings:   recent,
		UpcomingPeriods: toDutyPeriodResponses(profile.UpcomingPeriods),
		IsOnDuty:        profile.IsOnDuty,
		At:              profile.At,
	}
}

func toFeedbackResponse(f *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:         f.ID,
		Message:    f.Message,
		Email:      f.Email,
		PharmacyID: f.PharmacyID,
		Status:     f.Status,
		CreatedAt:  f.CreatedAt,
	}
}
