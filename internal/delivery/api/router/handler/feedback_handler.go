package handler

import (
	"net/http"

	"pharmaduty/internal/delivery/api/response"
	"pharmaduty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
}

// FeedbackHandler accepts visitor messages.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{feedbackUC: params.FeedbackUC}
}

// FeedbackRequest is the body of POST /feedbacks.
type FeedbackRequest struct {
	Message    string     `json:"message" validate:"required"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	PharmacyID *uuid.UUID `json:"pharmacyId,omitempty"`
}

// Submit handles POST /feedbacks
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	feedback, err := h.feedbackUC.Submit(c.Request().Context(), &usecase.FeedbackInput{
		Message:    req.Message,
		Email:      req.Email,
		PharmacyID: req.PharmacyID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFeedbackResponse(feedback))
}
