package postgres

import (
	"context"
	"time"

	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// feedbackRepository implements the domain.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// CreateFeedback persists a new feedback message.
func (repo *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrPharmacyNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

// ListFeedbacks returns one page of feedback, newest first, and the matching total.
func (repo *feedbackRepository) ListFeedbacks(ctx context.Context, filter repository.FeedbackFilter) ([]*entity.Feedback, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.FeedbackModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.PharmacyID != nil {
		query = query.Where("pharmacy_id = ?", *filter.PharmacyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count feedbacks")
	}

	var feedbackModels []*model.FeedbackModel
	if err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&feedbackModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list feedbacks")
	}

	feedbacks := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedbacks = append(feedbacks, toFeedbackDomain(feedbackM))
	}

	return feedbacks, total, nil
}

// UpdateFeedbackStatus changes the handling status and returns the updated row.
func (repo *feedbackRepository) UpdateFeedbackStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	result := repo.db.WithContext(ctx).
		Model(&feedbackM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update feedback status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrFeedbackNotFound
	}

	return toFeedbackDomain(&feedbackM), nil
}

// --- Mapper Functions ---

// toFeedbackDomain converts a GORM FeedbackModel to a domain Feedback entity.
func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:         data.ID,
		Message:    data.Message,
		Email:      data.Email,
		PharmacyID: data.PharmacyID,
		Status:     entity.FeedbackStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromFeedbackDomain converts a domain Feedback entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:         data.ID,
		Message:    data.Message,
		Email:      data.Email,
		PharmacyID: data.PharmacyID,
		Status:     string(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
