package repository

import (
	"errors"
	"time"

	"ombaro-backend/internal/domain/entity"
	domainRepo "ombaro-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type therapistRepository struct{}

func NewTherapistRepository() domainRepo.TherapistRepository {
	return &therapistRepository{}
}

func (r *therapistRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Therapist, error) {
	var therapist entity.Therapist
	err := db.Where("id = ?", id).First(&therapist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &therapist, nil
}

func (r *therapistRepository) FindByVendor(db *gorm.DB, vendorID uuid.UUID) ([]entity.Therapist, error) {
	var therapists []entity.Therapist
	err := db.Where("vendor_id = ? AND status = ?", vendorID, "active").
		Order("rating DESC").
		Find(&therapists).Error
	if err != nil {
		return nil, err
	}
	return therapists, nil
}

func (r *therapistRepository) FindAvailableByVendor(db *gorm.DB, vendorID uuid.UUID) ([]entity.Therapist, error) {
	var therapists []entity.Therapist
	err := db.Where("vendor_id = ? AND status = ? AND availability_status = ?",
		vendorID, "active", entity.TherapistAvailable).
		Order("rating DESC").
		Find(&therapists).Error
	if err != nil {
		return nil, err
	}
	return therapists, nil
}

func (r *therapistRepository) UpdateAvailability(db *gorm.DB, id uuid.UUID, status entity.TherapistAvailability) error {
	return db.Model(&entity.Therapist{}).
		Where("id = ?", id).
		Update("availability_status", status).Error
}

func (r *therapistRepository) UpdateLocation(db *gorm.DB, id uuid.UUID, lat, lng float64) error {
	return db.Model(&entity.Therapist{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"latitude":            lat,
			"longitude":           lng,
			"location_updated_at": time.Now(),
		}).Error
}
