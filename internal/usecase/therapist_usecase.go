package usecase

import (
	"context"

	"ombaro-backend/internal/converter"
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/internal/domain/repository"
	"ombaro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TherapistUsecase interface {
	GetTherapistsByVendor(ctx context.Context, vendorID uuid.UUID) (*dto.TherapistListResponse, error)
	GetAvailableTherapists(ctx context.Context, vendorID uuid.UUID) (*dto.TherapistListResponse, error)
	GetTherapist(ctx context.Context, id uuid.UUID) (*dto.TherapistResponse, error)
	UpdateLocation(ctx context.Context, therapistID uuid.UUID, req *dto.UpdateLocationRequest) error
	UpdateAvailability(ctx context.Context, therapistID uuid.UUID, req *dto.UpdateAvailabilityRequest) error
}

type therapistUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	therapistRepo   repository.TherapistRepository
	trackingService *service.LiveTrackingService
	auditService    service.AuditService
}

func NewTherapistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	therapistRepo repository.TherapistRepository,
	trackingService *service.LiveTrackingService,
	auditService service.AuditService,
) TherapistUsecase {
	return &therapistUsecase{
		db:              db,
		log:             log,
		therapistRepo:   therapistRepo,
		trackingService: trackingService,
		auditService:    auditService,
	}
}

func (u *therapistUsecase) GetTherapistsByVendor(ctx context.Context, vendorID uuid.UUID) (*dto.TherapistListResponse, error) {
	therapists, err := u.therapistRepo.FindByVendor(u.db.WithContext(ctx), vendorID)
	if err != nil {
		u.log.Warnf("Failed to find therapists for vendor %s: %+v", vendorID, err)
		return nil, err
	}

	return &dto.TherapistListResponse{
		Therapists: converter.TherapistsToResponses(therapists),
		Total:      len(therapists),
	}, nil
}

func (u *therapistUsecase) GetAvailableTherapists(ctx context.Context, vendorID uuid.UUID) (*dto.TherapistListResponse, error) {
	therapists, err := u.therapistRepo.FindAvailableByVendor(u.db.WithContext(ctx), vendorID)
	if err != nil {
		u.log.Warnf("Failed to find available therapists for vendor %s: %+v", vendorID, err)
		return nil, err
	}

	return &dto.TherapistListResponse{
		Therapists: converter.TherapistsToResponses(therapists),
		Total:      len(therapists),
	}, nil
}

func (u *therapistUsecase) GetTherapist(ctx context.Context, id uuid.UUID) (*dto.TherapistResponse, error) {
	therapist, err := u.therapistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find therapist %s: %+v", id, err)
		return nil, err
	}
	if therapist == nil {
		return nil, ErrTherapistNotFound
	}

	return converter.TherapistToResponse(therapist), nil
}

// UpdateLocation persists a position report and mirrors it to the live
// tracking cache. The DB write is authoritative; the mirror write failing
// only degrades freshness.
func (u *therapistUsecase) UpdateLocation(ctx context.Context, therapistID uuid.UUID, req *dto.UpdateLocationRequest) error {
	therapist, err := u.therapistRepo.FindByID(u.db.WithContext(ctx), therapistID)
	if err != nil {
		u.log.Warnf("Failed to find therapist %s: %+v", therapistID, err)
		return err
	}
	if therapist == nil {
		return ErrTherapistNotFound
	}

	if err := u.therapistRepo.UpdateLocation(u.db.WithContext(ctx), therapistID, req.Latitude, req.Longitude); err != nil {
		u.log.Warnf("Failed to update location for therapist %s: %+v", therapistID, err)
		return err
	}

	if err := u.trackingService.PublishTherapistLocation(ctx, therapistID, req.Latitude, req.Longitude); err != nil {
		u.log.Warnf("Failed to mirror location for therapist %s: %+v", therapistID, err)
	}

	if err := u.auditService.Log(ctx, u.db.WithContext(ctx), &therapistID, entity.AuditActionTherapistLocation, entity.JSON{
		"therapist_id": therapistID.String(),
		"latitude":     req.Latitude,
		"longitude":    req.Longitude,
	}); err != nil {
		u.log.Warnf("Failed to audit location update: %+v", err)
	}

	return nil
}

func (u *therapistUsecase) UpdateAvailability(ctx context.Context, therapistID uuid.UUID, req *dto.UpdateAvailabilityRequest) error {
	therapist, err := u.therapistRepo.FindByID(u.db.WithContext(ctx), therapistID)
	if err != nil {
		u.log.Warnf("Failed to find therapist %s: %+v", therapistID, err)
		return err
	}
	if therapist == nil {
		return ErrTherapistNotFound
	}

	status := entity.TherapistAvailability(req.AvailabilityStatus)
	if err := u.therapistRepo.UpdateAvailability(u.db.WithContext(ctx), therapistID, status); err != nil {
		u.log.Warnf("Failed to update availability for therapist %s: %+v", therapistID, err)
		return err
	}

	return nil
}
