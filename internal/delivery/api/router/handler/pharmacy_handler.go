package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pharmaduty/internal/delivery/api/response"
	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PharmacyHandlerParams holds dependencies for PharmacyHandler, injected by Fx.
type PharmacyHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	PharmacyUC  usecase.PharmacyUsecase
	DutyUC      usecase.DutyUsecase
	Logger      *slog.Logger
}

// PharmacyHandler serves the public directory and pharmacy management.
type PharmacyHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	pharmacyUC  usecase.PharmacyUsecase
	dutyUC      usecase.DutyUsecase
	logger      *slog.Logger
}

// NewPharmacyHandler is the constructor for PharmacyHandler
func NewPharmacyHandler(params PharmacyHandlerParams) *PharmacyHandler {
	return &PharmacyHandler{
		discoveryUC: params.DiscoveryUC,
		pharmacyUC:  params.PharmacyUC,
		dutyUC:      params.DutyUC,
		logger:      params.Logger,
	}
}

// PharmacyRequest is the body of registration and update.
type PharmacyRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=200"`
	Address      string          `json:"address" validate:"required,min=5,max=500"`
	City         string          `json:"city" validate:"required,min=2,max=100"`
	District     *string         `json:"district,omitempty" validate:"omitempty,max=100"`
	Phone        string          `json:"phone" validate:"required,min=8,max=30"`
	Email        *string         `json:"email,omitempty" validate:"omitempty,email"`
	Description  *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Latitude     *float64        `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude    *float64        `json:"longitude" validate:"required,min=-180,max=180"`
	OpeningHours json.RawMessage `json:"openingHours,omitempty"`
}

func (r *PharmacyRequest) toInput() *usecase.PharmacyInput {
	return &usecase.PharmacyInput{
		Name:         r.Name,
		Address:      r.Address,
		City:         r.City,
		District:     r.District,
		Phone:        r.Phone,
		Email:        r.Email,
		Description:  r.Description,
		Latitude:     *r.Latitude,
		Longitude:    *r.Longitude,
		OpeningHours: r.OpeningHours,
	}
}

// Search handles GET /pharmacies
func (h *PharmacyHandler) Search(c echo.Context) error {
	q := newQueryParser(c)
	input := &usecase.SearchInput{
		Search:    q.String("search"),
		City:      q.String("city"),
		District:  q.String("district"),
		At:        q.Instant("date"),
		Latitude:  q.Float("lat"),
		Longitude: q.Float("lng"),
		RadiusKm:  q.Float("radius"),
		DutyOnly:  q.Bool("onlyOnDuty"),
		SortBy:    q.String("sortBy"),
		Page:      q.Int("page"),
		PageSize:  q.Int("limit"),
	}
	if err := q.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.discoveryUC.Search(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toSearchResponse(result), result.Pagination)
}

// GetProfile handles GET /pharmacies/:id
func (h *PharmacyHandler) GetProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.pharmacyUC.GetPublicProfile(c.Request().Context(), deliverycontext.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// GetDutyStatus handles GET /pharmacies/:id/duty-status
func (h *PharmacyHandler) GetDutyStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	q := newQueryParser(c)
	at := q.Instant("at")
	if err := q.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.dutyUC.GetDutyStatus(c.Request().Context(), id, at)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDutyStatusResponse(status))
}

// GetQRCode handles GET /pharmacies/:id/qr
func (h *PharmacyHandler) GetQRCode(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.pharmacyUC.ProfileQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// Register handles POST /pharmacies
func (h *PharmacyHandler) Register(c echo.Context) error {
	var req PharmacyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pharmacy input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	pharmacy, err := h.pharmacyUC.Register(c.Request().Context(), deliverycontext.GetActor(c), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPharmacyResponse(pharmacy))
}

// Update handles PUT /pharmacies/:id
func (h *PharmacyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PharmacyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pharmacy input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	pharmacy, err := h.pharmacyUC.Update(c.Request().Context(), deliverycontext.GetActor(c), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPharmacyResponse(pharmacy))
}
