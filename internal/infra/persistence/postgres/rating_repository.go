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
)

// ratingRepository implements the domain.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// FindRatingByID retrieves a rating by its unique ID.
func (repo *ratingRepository) FindRatingByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).First(&ratingM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by ID")
	}

	return toRatingDomain(&ratingM), nil
}

// FindRatingByAnonymousID retrieves the rating left on a pharmacy by one anonymous visitor.
func (repo *ratingRepository) FindRatingByAnonymousID(ctx context.Context, pharmacyID uuid.UUID, anonymousID string) (*entity.Rating, error) {
	var ratingM model.RatingModel

	err := repo.db.WithContext(ctx).
		Where("pharmacy_id = ? AND anonymous_id = ?", pharmacyID, anonymousID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by anonymous id")
	}

	return toRatingDomain(&ratingM), nil
}

// ListApprovedRatings returns the approved ratings of a pharmacy, newest first.
func (repo *ratingRepository) ListApprovedRatings(ctx context.Context, pharmacyID uuid.UUID, limit int) ([]*entity.Rating, error) {
	query := repo.db.WithContext(ctx).
		Where("pharmacy_id = ? AND approved = ?", pharmacyID, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ratingModels []*model.RatingModel
	if err := query.Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list approved ratings")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// CreateRating persists a new rating.
func (repo *ratingRepository) CreateRating(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrRatingConflict)
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrPharmacyNotFound)
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid rating")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// UpdateRating replaces the score, comment and approval of an existing rating.
func (repo *ratingRepository) UpdateRating(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)
	ratingM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{ID: rating.ID}).
		Select("score", "comment", "approved", "updated_at").
		Updates(ratingM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// SetRatingApproval publishes or hides a rating.
func (repo *ratingRepository) SetRatingApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"approved": approved, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set rating approval")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:          data.ID,
		PharmacyID:  data.PharmacyID,
		Score:       data.Score,
		Comment:     data.Comment,
		Approved:    data.Approved,
		AnonymousID: data.AnonymousID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRatingDomain converts a domain Rating entity to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:          data.ID,
		PharmacyID:  data.PharmacyID,
		Score:       data.Score,
		Comment:     data.Comment,
		Approved:    data.Approved,
		AnonymousID: data.AnonymousID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
