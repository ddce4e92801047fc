package impl

import (
	"context"
	"strings"
	"unicode/utf8"

	"pharmaduty/config"
	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/usecase"
	"pharmaduty/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo    repository.FeedbackRepository
	pharmacyRepo    repository.PharmacyRepository
	defaultPageSize int
	maxPageSize     int
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	PharmacyRepo repository.PharmacyRepository
	Config       *config.Config
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	defaultSize, maxSize := pageSizes(params.Config)

	return &feedbackService{
		feedbackRepo:    params.FeedbackRepo,
		pharmacyRepo:    params.PharmacyRepo,
		defaultPageSize: defaultSize,
		maxPageSize:     maxSize,
	}
}

// Submit records a visitor message. A referenced pharmacy must exist.
func (s *feedbackService) Submit(ctx context.Context, input *usecase.FeedbackInput) (*entity.Feedback, error) {
	message := strings.TrimSpace(input.Message)
	if n := utf8.RuneCountInString(message); n < minFeedbackRunes || n > maxFeedbackRunes {
		return nil, domainerrors.Invalid("message", "must be between 10 and 1000 characters")
	}

	var pharmacyID *uuid.UUID
	if input.PharmacyID != nil && *input.PharmacyID != uuid.Nil {
		if _, err := s.pharmacyRepo.FindPharmacyByID(ctx, *input.PharmacyID); err != nil {
			return nil, translateRepositoryError(err, "failed to find pharmacy")
		}
		id := *input.PharmacyID
		pharmacyID = &id
	}

	feedback := &entity.Feedback{
		ID:         uuid.New(),
		Message:    message,
		Email:      util.NilIfBlank(input.Email),
		PharmacyID: pharmacyID,
		Status:     entity.FeedbackStatusPending,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, translateRepositoryError(err, "failed to create feedback")
	}

	return feedback, nil
}

// List pages through feedback, newest first.
func (s *feedbackService) List(ctx context.Context, actor *entity.Actor, input *usecase.ListFeedbackInput) (*usecase.FeedbackPage, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.Invalid("status", "unknown status")
	}

	page, pageSize := normalizePage(input.Page, input.PageSize, s.defaultPageSize, s.maxPageSize)

	feedbacks, total, err := s.feedbackRepo.ListFeedbacks(ctx, repository.FeedbackFilter{
		Status:     input.Status,
		PharmacyID: input.PharmacyID,
		Offset:     pageOffset(page, pageSize),
		Limit:      pageSize,
	})
	if err != nil {
		return nil, translateRepositoryError(err, "failed to list feedbacks")
	}

	return &usecase.FeedbackPage{
		Feedbacks:  feedbacks,
		Pagination: newPagination(page, pageSize, total),
	}, nil
}

// SetStatus records how an administrator handled a feedback.
func (s *feedbackService) SetStatus(ctx context.Context, actor *entity.Actor, feedbackID uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domainerrors.Invalid("status", "unknown status")
	}

	feedback, err := s.feedbackRepo.UpdateFeedbackStatus(ctx, feedbackID, status)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to update feedback status")
	}

	return feedback, nil
}
