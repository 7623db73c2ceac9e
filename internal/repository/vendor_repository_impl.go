package repository

import (
	"errors"

	"ombaro-backend/internal/domain/entity"
	domainRepo "ombaro-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vendorRepository struct{}

func NewVendorRepository() domainRepo.VendorRepository {
	return &vendorRepository{}
}

func (r *vendorRepository) FindActive(db *gorm.DB) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	err := db.Where("status = ?", entity.VendorStatusActive).
		Order("rating DESC").
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := db.Preload("Services", "is_active = ?", true).Where("id = ?", id).First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

// FindNearby computes great-circle distance in SQL (Haversine, Earth radius
// 6371 km) and filters/sorts by it.
func (r *vendorRepository) FindNearby(db *gorm.DB, lat, lng, radiusKm float64) ([]domainRepo.NearbyVendor, error) {
	var vendors []domainRepo.NearbyVendor
	err := r.nearbyQuery(db, lat, lng, radiusKm).Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

// nearbyQuery wraps the distance computation in a derived table so the outer
// WHERE can reference the distance_km alias. Postgres does not resolve
// output-column aliases in WHERE or HAVING of the same query level.
func (r *vendorRepository) nearbyQuery(db *gorm.DB, lat, lng, radiusKm float64) *gorm.DB {
	distance := db.Model(&entity.Vendor{}).
		Select(`vendors.*,
			(6371 * acos(
				cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) +
				sin(radians(?)) * sin(radians(latitude))
			)) AS distance_km`, lat, lng, lat).
		Where("status = ?", entity.VendorStatusActive)

	return db.Table("(?) AS nearby", distance).
		Where("distance_km <= ?", radiusKm).
		Order("distance_km ASC")
}

func (r *vendorRepository) FindActiveServices(db *gorm.DB, vendorID uuid.UUID) ([]entity.VendorService, error) {
	var services []entity.VendorService
	err := db.Where("vendor_id = ? AND is_active = ?", vendorID, true).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *vendorRepository) FindServicesByIDs(db *gorm.DB, vendorID uuid.UUID, serviceIDs []uuid.UUID) ([]entity.VendorService, error) {
	var services []entity.VendorService
	err := db.Where("vendor_id = ? AND id IN ? AND is_active = ?", vendorID, serviceIDs, true).
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
