// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pharmaduty/internal/delivery/api/middleware"
	"pharmaduty/internal/delivery/api/router/handler"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PharmacyHandler *handler.PharmacyHandler
	DutyHandler     *handler.DutyHandler
	RatingHandler   *handler.RatingHandler
	FeedbackHandler *handler.FeedbackHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	pharmacyHandler *handler.PharmacyHandler
	dutyHandler     *handler.DutyHandler
	ratingHandler   *handler.RatingHandler
	feedbackHandler *handler.FeedbackHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pharmacyHandler: params.PharmacyHandler,
		dutyHandler:     params.DutyHandler,
		ratingHandler:   params.RatingHandler,
		feedbackHandler: params.FeedbackHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	apiV1 := e.Group("/api/v1")

	// Public directory, no account needed
	{
		apiV1.GET("/pharmacies", r.pharmacyHandler.Search)
		apiV1.GET("/pharmacies/:id", r.pharmacyHandler.GetProfile, r.authMiddleware.OptionalAuthenticate)
		apiV1.GET("/pharmacies/:id/duty-status", r.pharmacyHandler.GetDutyStatus)
		apiV1.GET("/pharmacies/:id/qr", r.pharmacyHandler.GetQRCode)
		apiV1.GET("/duty-periods", r.dutyHandler.List)
		apiV1.POST("/ratings", r.ratingHandler.Rate)
		apiV1.POST("/feedbacks", r.feedbackHandler.Submit)
	}

	// Pharmacist space, admins may act on any pharmacy
	staff := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RolePharmacist, entity.RoleAdmin),
	}
	{
		apiV1.POST("/pharmacies", r.pharmacyHandler.Register, staff...)
		apiV1.PUT("/pharmacies/:id", r.pharmacyHandler.Update, staff...)
		apiV1.POST("/duty-periods", r.dutyHandler.Schedule, staff...)
		apiV1.PUT("/duty-periods/:id", r.dutyHandler.Reschedule, staff...)
		apiV1.DELETE("/duty-periods/:id", r.dutyHandler.Cancel, staff...)
	}

	admin := apiV1.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/pharmacies", r.adminHandler.ListPharmacies)
		admin.PATCH("/pharmacies", r.adminHandler.ModeratePharmacies)
		admin.PATCH("/ratings/:id", r.adminHandler.SetRatingApproval)
		admin.GET("/feedbacks", r.adminHandler.ListFeedbacks)
		admin.PATCH("/feedbacks/:id", r.adminHandler.SetFeedbackStatus)
	}
}
