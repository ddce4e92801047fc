package handler

import (
	"net/http"

	"pharmaduty/internal/delivery/api/response"
	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	PharmacyUC usecase.PharmacyUsecase
	RatingUC   usecase.RatingUsecase
	FeedbackUC usecase.FeedbackUsecase
}

// AdminHandler serves the moderation back office.
type AdminHandler struct {
	pharmacyUC usecase.PharmacyUsecase
	ratingUC   usecase.RatingUsecase
	feedbackUC usecase.FeedbackUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		pharmacyUC: params.PharmacyUC,
		ratingUC:   params.RatingUC,
		feedbackUC: params.FeedbackUC,
	}
}

// ModeratePharmaciesRequest is the body of PATCH /admin/pharmacies.
type ModeratePharmaciesRequest struct {
	IDs    []uuid.UUID `json:"ids" validate:"required,min=1,max=500"`
	Action string      `json:"action" validate:"required,oneof=approve reject"`
}

// RatingApprovalRequest is the body of PATCH /admin/ratings/:id.
type RatingApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// FeedbackStatusRequest is the body of PATCH /admin/feedbacks/:id.
type FeedbackStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING RESOLVED DISMISSED"`
}

// ListPharmacies handles GET /admin/pharmacies
func (h *AdminHandler) ListPharmacies(c echo.Context) error {
	q := newQueryParser(c)
	input := &usecase.AdminListInput{
		Search:   q.String("search"),
		Page:     q.Int("page"),
		PageSize: q.Int("limit"),
	}
	if status := q.String("status"); status != "" {
		s := entity.PharmacyStatus(status)
		input.Status = &s
	}
	if err := q.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.pharmacyUC.AdminList(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, AdminPharmaciesResponse{
		Pharmacies:   toPharmacyResponses(page.Pharmacies),
		StatusCounts: page.StatusCounts,
	}, page.Pagination)
}

// ModeratePharmacies handles PATCH /admin/pharmacies
func (h *AdminHandler) ModeratePharmacies(c echo.Context) error {
	var req ModeratePharmaciesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.pharmacyUC.Moderate(c.Request().Context(), deliverycontext.GetActor(c), req.IDs, usecase.ModerationAction(req.Action))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

// SetRatingApproval handles PATCH /admin/ratings/:id
func (h *AdminHandler) SetRatingApproval(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RatingApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating approval input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	rating, err := h.ratingUC.SetApproval(c.Request().Context(), deliverycontext.GetActor(c), id, *req.Approved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRatingResponse(rating))
}

// ListFeedbacks handles GET /admin/feedbacks
func (h *AdminHandler) ListFeedbacks(c echo.Context) error {
	q := newQueryParser(c)
	input := &usecase.ListFeedbackInput{
		PharmacyID: q.UUID("pharmacyId"),
		Page:       q.Int("page"),
		PageSize:   q.Int("limit"),
	}
	if status := q.String("status"); status != "" {
		s := entity.FeedbackStatus(status)
		input.Status = &s
	}
	if err := q.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.feedbackUC.List(c.Request().Context(), deliverycontext.GetActor(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	feedbacks := make([]FeedbackResponse, 0, len(page.Feedbacks))
	for _, f := range page.Feedbacks {
		feedbacks = append(feedbacks, toFeedbackResponse(f))
	}

	return response.Paginated(c, feedbacks, page.Pagination)
}

// SetFeedbackStatus handles PATCH /admin/feedbacks/:id
func (h *AdminHandler) SetFeedbackStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FeedbackStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	feedback, err := h.feedbackUC.SetStatus(c.Request().Context(), deliverycontext.GetActor(c), id, entity.FeedbackStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFeedbackResponse(feedback))
}
