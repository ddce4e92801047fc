package impl

import (
	"context"
	"slices"
	"strings"

	"pharmaduty/config"
	"pharmaduty/internal/domain/duty"
	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/rating"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/usecase"
	"pharmaduty/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pharmacyService implements the PharmacyUsecase interface.
type pharmacyService struct {
	pharmacyRepo       repository.PharmacyRepository
	dutyRepo           repository.DutyPeriodRepository
	ratingRepo         repository.RatingRepository
	qrCodeService      service.QRCodeService
	clock              service.Clock
	recentRatingsLimit int
	defaultPageSize    int
	maxPageSize        int
}

// PharmacyServiceParams holds dependencies for PharmacyService, injected by Fx.
type PharmacyServiceParams struct {
	fx.In

	PharmacyRepo  repository.PharmacyRepository
	DutyRepo      repository.DutyPeriodRepository
	RatingRepo    repository.RatingRepository
	QRCodeService service.QRCodeService
	Clock         service.Clock
	Config        *config.Config
}

// NewPharmacyService is the constructor for pharmacyService.
func NewPharmacyService(params PharmacyServiceParams) usecase.PharmacyUsecase {
	defaultSize, maxSize := pageSizes(params.Config)

	recentRatings := config.DefaultRecentRatingsLimit
	if params.Config != nil && params.Config.Discovery != nil {
		recentRatings = params.Config.Discovery.RecentRatingsLimit
	}

	return &pharmacyService{
		pharmacyRepo:       params.PharmacyRepo,
		dutyRepo:           params.DutyRepo,
		ratingRepo:         params.RatingRepo,
		qrCodeService:      params.QRCodeService,
		clock:              params.Clock,
		recentRatingsLimit: recentRatings,
		defaultPageSize:    defaultSize,
		maxPageSize:        maxSize,
	}
}

// Register creates the actor's pharmacy, pending moderation.
func (s *pharmacyService) Register(ctx context.Context, actor *entity.Actor, input *usecase.PharmacyInput) (*entity.Pharmacy, error) {
	if actor == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if err := validatePharmacyInput(input); err != nil {
		return nil, err
	}

	ownerID := actor.UserID
	pharmacy := &entity.Pharmacy{
		ID:      uuid.New(),
		Status:  entity.PharmacyStatusPending,
		OwnerID: &ownerID,
	}
	applyPharmacyInput(pharmacy, input)

	if err := s.pharmacyRepo.CreatePharmacy(ctx, pharmacy); err != nil {
		return nil, translateRepositoryError(err, "failed to create pharmacy")
	}

	return pharmacy, nil
}

// GetPublicProfile assembles the detail page and counts the view.
func (s *pharmacyService) GetPublicProfile(ctx context.Context, actor *entity.Actor, pharmacyID uuid.UUID) (*usecase.PublicProfile, error) {
	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to find pharmacy")
	}
	if !pharmacy.IsApproved() && !actor.CanManage(pharmacy) {
		return nil, errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	if err := s.pharmacyRepo.IncrementViewCount(ctx, pharmacyID); err != nil {
		return nil, translateRepositoryError(err, "failed to increment view count")
	}
	pharmacy.ViewCount++

	now := s.clock.Now()
	upcoming, err := s.dutyRepo.ListDutyPeriods(ctx, repository.DutyPeriodFilter{
		PharmacyID:  &pharmacyID,
		EndingAfter: &now,
	})
	if err != nil {
		return nil, translateRepositoryError(err, "failed to list upcoming duty periods")
	}

	approved, err := s.ratingRepo.ListApprovedRatings(ctx, pharmacyID, 0)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to list ratings")
	}

	recent := approved
	if s.recentRatingsLimit > 0 && len(recent) > s.recentRatingsLimit {
		recent = recent[:s.recentRatingsLimit]
	}

	return &usecase.PublicProfile{
		Pharmacy:        pharmacy,
		Rating:          rating.Aggregate(approved),
		RecentRatings:   recent,
		UpcomingPeriods: upcoming,
		IsOnDuty:        duty.IsOnDuty(upcoming, now),
		At:              now,
	}, nil
}

// Update replaces the editable fields of a pharmacy.
func (s *pharmacyService) Update(ctx context.Context, actor *entity.Actor, pharmacyID uuid.UUID, input *usecase.PharmacyInput) (*entity.Pharmacy, error) {
	if actor == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if err := validatePharmacyInput(input); err != nil {
		return nil, err
	}

	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to find pharmacy")
	}
	if !actor.CanManage(pharmacy) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	applyPharmacyInput(pharmacy, input)

	if err := s.pharmacyRepo.UpdatePharmacy(ctx, pharmacy); err != nil {
		return nil, translateRepositoryError(err, "failed to update pharmacy")
	}

	return pharmacy, nil
}

// AdminList pages through every pharmacy with the per-status counts.
func (s *pharmacyService) AdminList(ctx context.Context, actor *entity.Actor, input *usecase.AdminListInput) (*usecase.AdminPharmacyPage, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.Invalid("status", "unknown status")
	}

	page, pageSize := normalizePage(input.Page, input.PageSize, s.defaultPageSize, s.maxPageSize)

	pharmacies, total, err := s.pharmacyRepo.ListPharmaciesForAdmin(ctx, repository.AdminPharmacyFilter{
		Status: input.Status,
		Search: strings.TrimSpace(input.Search),
		Offset: pageOffset(page, pageSize),
		Limit:  pageSize,
	})
	if err != nil {
		return nil, translateRepositoryError(err, "failed to list pharmacies")
	}

	counts, err := s.pharmacyRepo.CountPharmaciesByStatus(ctx)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to count pharmacies")
	}

	return &usecase.AdminPharmacyPage{
		Pharmacies:   pharmacies,
		Pagination:   newPagination(page, pageSize, total),
		StatusCounts: counts,
	}, nil
}

// Moderate approves or rejects pharmacies in bulk. Unknown ids are skipped.
func (s *pharmacyService) Moderate(ctx context.Context, actor *entity.Actor, ids []uuid.UUID, action usecase.ModerationAction) (int64, error) {
	if err := requireAdmin(actor); err != nil {
		return 0, err
	}

	var status entity.PharmacyStatus
	switch action {
	case usecase.ModerationApprove:
		status = entity.PharmacyStatusApproved
	case usecase.ModerationReject:
		status = entity.PharmacyStatusRejected
	default:
		return 0, domainerrors.Invalid("action", "must be approve or reject")
	}

	ids = slices.DeleteFunc(slices.Clone(ids), func(id uuid.UUID) bool { return id == uuid.Nil })
	if len(ids) == 0 {
		return 0, domainerrors.Invalid("ids", "required")
	}

	updated, err := s.pharmacyRepo.UpdatePharmacyStatus(ctx, ids, status)
	if err != nil {
		return 0, translateRepositoryError(err, "failed to update pharmacy status")
	}

	return updated, nil
}

// ProfileQRCode renders the QR code of an approved pharmacy's public page.
func (s *pharmacyService) ProfileQRCode(ctx context.Context, pharmacyID uuid.UUID) ([]byte, error) {
	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to find pharmacy")
	}
	if !pharmacy.IsApproved() {
		return nil, errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	png, err := s.qrCodeService.GeneratePharmacyQR(pharmacy.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func applyPharmacyInput(pharmacy *entity.Pharmacy, input *usecase.PharmacyInput) {
	pharmacy.Name = strings.TrimSpace(input.Name)
	pharmacy.Address = strings.TrimSpace(input.Address)
	pharmacy.City = strings.TrimSpace(input.City)
	pharmacy.District = util.NilIfBlank(input.District)
	pharmacy.Phone = strings.TrimSpace(input.Phone)
	pharmacy.Email = util.NilIfBlank(input.Email)
	pharmacy.Description = util.NilIfBlank(input.Description)
	pharmacy.Latitude = input.Latitude
	pharmacy.Longitude = input.Longitude
	pharmacy.OpeningHours = slices.Clone(input.OpeningHours)
}
