package repository

import (
	"ombaro-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TherapistRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Therapist, error)
	FindByVendor(db *gorm.DB, vendorID uuid.UUID) ([]entity.Therapist, error)
	FindAvailableByVendor(db *gorm.DB, vendorID uuid.UUID) ([]entity.Therapist, error)
	UpdateAvailability(db *gorm.DB, id uuid.UUID, status entity.TherapistAvailability) error
	UpdateLocation(db *gorm.DB, id uuid.UUID, lat, lng float64) error
}
