package repository

import (
	"ombaro-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByMobile(db *gorm.DB, mobile string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	MarkVerified(db *gorm.DB, id uuid.UUID) error
}
