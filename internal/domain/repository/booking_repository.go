package repository

import (
	"ombaro-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error)
	// UpdateStatus moves a booking from exactly fromStatus to toStatus and
	// returns affected rows: 1 = success, 0 = the booking was not in
	// fromStatus (lost the race or illegal call).
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error)
	UpdatePaymentStatus(db *gorm.DB, id uuid.UUID, status entity.PaymentStatus) error
	AssignTherapist(db *gorm.DB, id uuid.UUID, therapistID uuid.UUID) error
	UpdateSchedule(db *gorm.DB, id uuid.UUID, date string, timeOfDay string) error
}

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Payment, error)
}
