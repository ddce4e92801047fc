package handler

import (
	"net/http"
	"time"

	"pharmaduty/internal/delivery/api/response"
	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DutyHandlerParams holds dependencies for DutyHandler, injected by Fx.
type DutyHandlerParams struct {
	fx.In

	DutyUC usecase.DutyUsecase
}

// DutyHandler serves the duty calendar.
type DutyHandler struct {
	dutyUC usecase.DutyUsecase
}

// NewDutyHandler is the constructor for DutyHandler
func NewDutyHandler(params DutyHandlerParams) *DutyHandler {
	return &DutyHandler{dutyUC: params.DutyUC}
}

// ScheduleDutyRequest is the body of POST /duty-periods.
type ScheduleDutyRequest struct {
	PharmacyID *uuid.UUID `json:"pharmacyId,omitempty"`
	StartAt    time.Time  `json:"startAt" validate:"required"`
	EndAt      time.Time  `json:"endAt" validate:"required"`
	Note       *string    `json:"note,omitempty" validate:"omitempty,max=500"`
}

// RescheduleDutyRequest is the body of PUT /duty-periods/:id.
type RescheduleDutyRequest struct {
	StartAt time.Time `json:"startAt" validate:"required"`
	EndAt   time.Time `json:"endAt" validate:"required"`
	Note    *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

// List handles GET /duty-periods
func (h *DutyHandler) List(c echo.Context) error {
	q := newQueryParser(c)
	input := &usecase.ListDutyPeriodsInput{
		PharmacyID: q.UUID("pharmacyId"),
		Covering:   q.Instant("date"),
		Upcoming:   q.Bool("upcoming"),
	}
	if err := q.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	periods, err := h.dutyUC.ListDutyPeriods(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDutyPeriodResponses(periods))
}

// Schedule handles POST /duty-periods
func (h *DutyHandler) Schedule(c echo.Context) error {
	var req ScheduleDutyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid duty period input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	period, err := h.dutyUC.ScheduleDuty(c.Request().Context(), deliverycontext.GetActor(c), &usecase.ScheduleDutyInput{
		PharmacyID: req.PharmacyID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Note:       req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDutyPeriodResponse(period))
}

// Reschedule handles PUT /duty-periods/:id
func (h *DutyHandler) Reschedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RescheduleDutyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid duty period input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	period, err := h.dutyUC.RescheduleDuty(c.Request().Context(), deliverycontext.GetActor(c), id, &usecase.RescheduleDutyInput{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Note:    req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDutyPeriodResponse(period))
}

// Cancel handles DELETE /duty-periods/:id
func (h *DutyHandler) Cancel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.dutyUC.CancelDuty(c.Request().Context(), deliverycontext.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
