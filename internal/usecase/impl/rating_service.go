package impl

import (
	"context"
	"strconv"
	"unicode/utf8"

	"pharmaduty/config"
	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/usecase"
	"pharmaduty/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager    repository.TransactionManager
	pharmacyRepo repository.PharmacyRepository
	ratingRepo   repository.RatingRepository
	anonymizer   service.Anonymizer
	metrics      service.Metrics
	autoApprove  bool
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PharmacyRepo repository.PharmacyRepository
	RatingRepo   repository.RatingRepository
	Anonymizer   service.Anonymizer
	Metrics      service.Metrics
	Config       *config.Config
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	autoApprove := true
	if params.Config != nil && params.Config.Rating != nil {
		autoApprove = params.Config.Rating.AutoApprove
	}

	return &ratingService{
		txManager:    params.TxManager,
		pharmacyRepo: params.PharmacyRepo,
		ratingRepo:   params.RatingRepo,
		anonymizer:   params.Anonymizer,
		metrics:      params.Metrics,
		autoApprove:  autoApprove,
	}
}

// RateScore upserts the rating keyed by (pharmacy, anonymous id). A resubmission
// replaces score and comment and goes through moderation again.
func (s *ratingService) RateScore(ctx context.Context, input *usecase.RateInput) (*entity.Rating, bool, error) {
	comment := util.NilIfBlank(input.Comment)
	if err := validateRating(input.Score, comment); err != nil {
		return nil, false, err
	}

	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, input.PharmacyID)
	if err != nil {
		return nil, false, translateRepositoryError(err, "failed to find pharmacy")
	}
	if !pharmacy.IsApproved() {
		return nil, false, errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	anonymousID := s.anonymizer.AnonymousID(input.Origin)

	var (
		result  *entity.Rating
		created bool
	)
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		ratingRepo := factory.NewRatingRepository()

		existing, err := ratingRepo.FindRatingByAnonymousID(ctx, pharmacy.ID, anonymousID)
		switch {
		case err == nil:
			existing.Score = input.Score
			existing.Comment = comment
			existing.Approved = s.autoApprove
			if err := ratingRepo.UpdateRating(ctx, existing); err != nil {
				return translateRepositoryError(err, "failed to update rating")
			}
			result = existing

			return nil
		case !errors.Is(err, repository.ErrRatingNotFound):
			return translateRepositoryError(err, "failed to find rating")
		}

		rating := &entity.Rating{
			ID:          uuid.New(),
			PharmacyID:  pharmacy.ID,
			Score:       input.Score,
			Comment:     comment,
			Approved:    s.autoApprove,
			AnonymousID: anonymousID,
		}
		if err := ratingRepo.CreateRating(ctx, rating); err != nil {
			return translateRepositoryError(err, "failed to create rating")
		}
		result = rating
		created = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.metrics.RecordRating(created)

	return result, created, nil
}

// SetApproval moderates a rating.
func (s *ratingService) SetApproval(ctx context.Context, actor *entity.Actor, ratingID uuid.UUID, approved bool) (*entity.Rating, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.ratingRepo.SetRatingApproval(ctx, ratingID, approved); err != nil {
		return nil, translateRepositoryError(err, "failed to set rating approval")
	}

	rating, err := s.ratingRepo.FindRatingByID(ctx, ratingID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to find rating")
	}

	return rating, nil
}

func validateRating(score int, comment *string) error {
	var fields []domainerrors.FieldError
	if score < entity.MinRatingScore || score > entity.MaxRatingScore {
		fields = append(fields, domainerrors.FieldError{
			Field:  "score",
			Reason: "must be between " + strconv.Itoa(entity.MinRatingScore) + " and " + strconv.Itoa(entity.MaxRatingScore),
		})
	}
	if comment != nil && utf8.RuneCountInString(*comment) > entity.MaxRatingCommentRunes {
		fields = append(fields, domainerrors.FieldError{
			Field:  "comment",
			Reason: "must be at most " + strconv.Itoa(entity.MaxRatingCommentRunes) + " characters",
		})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
