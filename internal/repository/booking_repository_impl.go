package repository

import (
	"errors"

	"ombaro-backend/internal/domain/entity"
	domainRepo "ombaro-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Items").Preload("Vendor").Preload("Therapist").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Items").Preload("Vendor").Preload("Therapist").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus performs a compare-and-set on the status column so two racing
// advances cannot both succeed.
func (r *bookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) UpdatePaymentStatus(db *gorm.DB, id uuid.UUID, status entity.PaymentStatus) error {
	return db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *bookingRepository) AssignTherapist(db *gorm.DB, id uuid.UUID, therapistID uuid.UUID) error {
	return db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("therapist_id", therapistID).Error
}

func (r *bookingRepository) UpdateSchedule(db *gorm.DB, id uuid.UUID, date string, timeOfDay string) error {
	return db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"booking_date": date,
			"booking_time": timeOfDay,
		}).Error
}

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("booking_id = ?", bookingID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}
