package usecase

import (
	"context"

	"ombaro-backend/internal/converter"
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VendorUsecase interface {
	GetVendors(ctx context.Context) (*dto.VendorListResponse, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*dto.VendorResponse, error)
	GetNearbyVendors(ctx context.Context, lat, lng, radiusKm float64) (*dto.VendorListResponse, error)
	GetVendorServices(ctx context.Context, vendorID uuid.UUID) (*dto.VendorServiceListResponse, error)
}

type vendorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	vendorRepo repository.VendorRepository
}

func NewVendorUsecase(db *gorm.DB, log *logrus.Logger, vendorRepo repository.VendorRepository) VendorUsecase {
	return &vendorUsecase{
		db:         db,
		log:        log,
		vendorRepo: vendorRepo,
	}
}

// GetVendors lists active vendors, best rated first.
func (u *vendorUsecase) GetVendors(ctx context.Context) (*dto.VendorListResponse, error) {
	vendors, err := u.vendorRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find vendors: %+v", err)
		return nil, err
	}

	return &dto.VendorListResponse{
		Vendors: converter.VendorsToResponses(vendors),
		Total:   len(vendors),
	}, nil
}

func (u *vendorUsecase) GetVendor(ctx context.Context, id uuid.UUID) (*dto.VendorResponse, error) {
	vendor, err := u.vendorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find vendor %s: %+v", id, err)
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	return converter.VendorToResponse(vendor), nil
}

// GetNearbyVendors runs a Haversine distance search around the given point.
func (u *vendorUsecase) GetNearbyVendors(ctx context.Context, lat, lng, radiusKm float64) (*dto.VendorListResponse, error) {
	vendors, err := u.vendorRepo.FindNearby(u.db.WithContext(ctx), lat, lng, radiusKm)
	if err != nil {
		u.log.Warnf("Failed to find nearby vendors: %+v", err)
		return nil, err
	}

	return &dto.VendorListResponse{
		Vendors: converter.NearbyVendorsToResponses(vendors),
		Total:   len(vendors),
	}, nil
}

func (u *vendorUsecase) GetVendorServices(ctx context.Context, vendorID uuid.UUID) (*dto.VendorServiceListResponse, error) {
	vendor, err := u.vendorRepo.FindByID(u.db.WithContext(ctx), vendorID)
	if err != nil {
		u.log.Warnf("Failed to find vendor %s: %+v", vendorID, err)
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	services, err := u.vendorRepo.FindActiveServices(u.db.WithContext(ctx), vendorID)
	if err != nil {
		u.log.Warnf("Failed to find services for vendor %s: %+v", vendorID, err)
		return nil, err
	}

	return &dto.VendorServiceListResponse{
		Services: converter.VendorServicesToResponses(services),
		Total:    len(services),
	}, nil
}
