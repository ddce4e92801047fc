package handler

import (
	"net/http"

	"pharmaduty/internal/delivery/api/response"
	"pharmaduty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
}

// RatingHandler accepts anonymous ratings.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{ratingUC: params.RatingUC}
}

// RateRequest is the body of POST /ratings.
type RateRequest struct {
	PharmacyID uuid.UUID `json:"pharmacyId" validate:"required"`
	Score      int       `json:"score" validate:"required,min=1,max=5"`
	Comment    *string   `json:"comment,omitempty"`
}

// Rate handles POST /ratings. The visitor is identified by the client IP.
func (h *RatingHandler) Rate(c echo.Context) error {
	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	rating, created, err := h.ratingUC.RateScore(c.Request().Context(), &usecase.RateInput{
		PharmacyID: req.PharmacyID,
		Score:      req.Score,
		Comment:    req.Comment,
		Origin:     c.RealIP(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, toRatingResponse(rating))
}
