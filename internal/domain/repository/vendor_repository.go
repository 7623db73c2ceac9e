package repository

import (
	"ombaro-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NearbyVendor is a vendor row with its computed distance from a search point.
type NearbyVendor struct {
	entity.Vendor
	DistanceKm float64 `json:"distance_km"`
}

type VendorRepository interface {
	FindActive(db *gorm.DB) ([]entity.Vendor, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vendor, error)
	FindNearby(db *gorm.DB, lat, lng, radiusKm float64) ([]NearbyVendor, error)
	FindActiveServices(db *gorm.DB, vendorID uuid.UUID) ([]entity.VendorService, error)
	FindServicesByIDs(db *gorm.DB, vendorID uuid.UUID, serviceIDs []uuid.UUID) ([]entity.VendorService, error)
}
