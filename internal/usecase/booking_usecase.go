package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"ombaro-backend/internal/converter"
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/internal/domain/repository"
	"ombaro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingNotOwned         = errors.New("booking does not belong to you")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingNotCancellable   = errors.New("booking can no longer be cancelled")
	ErrBookingNotReschedulable = errors.New("booking can no longer be rescheduled")
	ErrBookingDatePast         = errors.New("cannot book a past date")
	ErrPaymentAlreadyCaptured  = errors.New("payment has already been captured")
	ErrVendorNotFound          = errors.New("vendor not found")
	ErrVendorNotActive         = errors.New("vendor is not accepting bookings")
	ErrServiceNotFound         = errors.New("one or more services not found")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, customerID uuid.UUID) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, customerID, bookingID uuid.UUID) (*dto.BookingResponse, error)
	ConfirmPayment(ctx context.Context, customerID, bookingID uuid.UUID, req *dto.ConfirmPaymentRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, customerID, bookingID uuid.UUID) error
	RescheduleBooking(ctx context.Context, customerID, bookingID uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	paymentRepo     repository.PaymentRepository
	vendorRepo      repository.VendorRepository
	trackingService *service.LiveTrackingService
	auditService    service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	vendorRepo repository.VendorRepository,
	trackingService *service.LiveTrackingService,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		paymentRepo:     paymentRepo,
		vendorRepo:      vendorRepo,
		trackingService: trackingService,
		auditService:    auditService,
	}
}

// CreateBooking quotes the selected services server-side and persists the
// booking awaiting payment.
//
// Flow:
// 1. Validate vendor exists and is active
// 2. Resolve the selected services against the vendor's catalog
// 3. Compute the quote from catalog prices, never client input
// 4. Insert booking + items as pending_payment
func (u *bookingUsecase) CreateBooking(ctx context.Context, customerID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, ErrVendorNotFound
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if bookingDate.Before(today) {
		return nil, ErrBookingDatePast
	}

	vendor, err := u.vendorRepo.FindByID(u.db.WithContext(ctx), vendorID)
	if err != nil {
		u.log.Warnf("Failed to find vendor %s: %+v", vendorID, err)
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	if !vendor.IsActive() {
		return nil, ErrVendorNotActive
	}

	serviceIDs := make([]uuid.UUID, 0, len(req.ServiceIDs))
	for _, raw := range req.ServiceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrServiceNotFound
		}
		serviceIDs = append(serviceIDs, id)
	}

	services, err := u.vendorRepo.FindServicesByIDs(u.db.WithContext(ctx), vendorID, serviceIDs)
	if err != nil {
		u.log.Warnf("Failed to find services for vendor %s: %+v", vendorID, err)
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, ErrServiceNotFound
	}

	prices := make([]decimal.Decimal, len(services))
	items := make([]entity.BookingItem, len(services))
	for i, svc := range services {
		prices[i] = svc.Price
		items[i] = entity.BookingItem{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Price:     svc.Price,
		}
	}
	quote := ComputeQuote(prices)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking := &entity.Booking{
		BookingCode:   generateBookingCode(bookingDate),
		CustomerID:    customerID,
		VendorID:      vendorID,
		BookingDate:   bookingDate,
		BookingTime:   req.BookingTime,
		Address:       req.Address,
		Subtotal:      quote.Subtotal,
		ServiceCharge: quote.ServiceCharge,
		GST:           quote.GST,
		TotalAmount:   quote.TotalAmount,
		Status:        entity.BookingStatusPendingPayment,
		PaymentStatus: entity.PaymentStatusPending,
		Items:         items,
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isForeignKeyError(err, "vendor") {
			return nil, ErrVendorNotFound
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &customerID, entity.AuditActionBookingCreate, entity.JSON{
		"booking_id":   booking.ID.String(),
		"booking_code": booking.BookingCode,
		"vendor_id":    vendorID.String(),
		"total_amount": quote.TotalAmount.String(),
	}); err != nil {
		u.log.Warnf("Failed to audit booking creation: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, code=%s, total=%s", booking.ID, booking.BookingCode, quote.TotalAmount)
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetMyBookings(ctx context.Context, customerID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for customer %s: %+v", customerID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, customerID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.findOwnedBooking(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// ConfirmPayment records the payment capture and enters the service
// lifecycle at confirmed. The move out of pending_payment is a compare-and-
// set so a double submit captures only once.
func (u *bookingUsecase) ConfirmPayment(ctx context.Context, customerID, bookingID uuid.UUID, req *dto.ConfirmPaymentRequest) (*dto.BookingResponse, error) {
	booking, err := u.findOwnedBooking(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPendingPayment {
		return nil, ErrPaymentAlreadyCaptured
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.bookingRepo.UpdateStatus(tx, bookingID, entity.BookingStatusPendingPayment, entity.BookingStatusConfirmed)
	if err != nil {
		u.log.Warnf("Failed to confirm booking %s: %+v", bookingID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPaymentAlreadyCaptured
	}

	if err := u.bookingRepo.UpdatePaymentStatus(tx, bookingID, entity.PaymentStatusPaid); err != nil {
		u.log.Warnf("Failed to update payment status for booking %s: %+v", bookingID, err)
		return nil, err
	}

	payment := &entity.Payment{
		BookingID:      bookingID,
		Amount:         booking.TotalAmount,
		Method:         entity.PaymentMethod(req.Method),
		Status:         entity.PaymentStatusPaid,
		TransactionRef: req.TransactionRef,
	}
	if err := u.paymentRepo.Create(tx, payment); err != nil {
		u.log.Warnf("Failed to create payment for booking %s: %+v", bookingID, err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &customerID, entity.AuditActionPaymentCapture, entity.JSON{
		"booking_id": bookingID.String(),
		"method":     req.Method,
		"amount":     booking.TotalAmount.String(),
	}); err != nil {
		u.log.Warnf("Failed to audit payment capture: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Confirm()
	u.trackingService.PublishBookingStatus(ctx, bookingID, booking.Status)

	u.log.Infof("Payment captured: booking=%s, method=%s", bookingID, req.Method)
	return converter.BookingToResponse(booking), nil
}

// CancelBooking cancels an owned booking. Cancellation is a disconnected
// move, never part of the forward lifecycle, and is refused once the
// therapist has started the service.
func (u *bookingUsecase) CancelBooking(ctx context.Context, customerID, bookingID uuid.UUID) error {
	booking, err := u.findOwnedBooking(ctx, customerID, bookingID)
	if err != nil {
		return err
	}

	if booking.IsCancelled() {
		return ErrBookingAlreadyCancelled
	}
	if booking.ServiceStarted() {
		return ErrBookingNotCancellable
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.bookingRepo.UpdateStatus(tx, bookingID, booking.Status, entity.BookingStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return err
	}
	if affected == 0 {
		// the booking moved under us; treat as no longer cancellable
		return ErrBookingNotCancellable
	}

	if err := u.auditService.Log(ctx, tx, &customerID, entity.AuditActionBookingCancel, entity.JSON{
		"booking_id": bookingID.String(),
		"from":       string(booking.Status),
	}); err != nil {
		u.log.Warnf("Failed to audit booking cancel: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.trackingService.ClearBooking(ctx, bookingID)

	u.log.Infof("Booking cancelled: id=%s", bookingID)
	return nil
}

// RescheduleBooking changes date and time while the service has not started.
func (u *bookingUsecase) RescheduleBooking(ctx context.Context, customerID, bookingID uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error) {
	booking, err := u.findOwnedBooking(ctx, customerID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		return nil, ErrBookingAlreadyCancelled
	}
	if booking.ServiceStarted() {
		return nil, ErrBookingNotReschedulable
	}

	newDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if newDate.Before(today) {
		return nil, ErrBookingDatePast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.UpdateSchedule(tx, bookingID, req.BookingDate, req.BookingTime); err != nil {
		u.log.Warnf("Failed to reschedule booking %s: %+v", bookingID, err)
		return nil, err
	}

	if err := u.auditService.LogChange(ctx, tx, &customerID, entity.AuditActionBookingReschedule, "booking", bookingID.String(),
		entity.JSON{"date": booking.BookingDate.Format("2006-01-02"), "time": booking.BookingTime},
		entity.JSON{"date": req.BookingDate, "time": req.BookingTime},
	); err != nil {
		u.log.Warnf("Failed to audit booking reschedule: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.BookingDate = newDate
	booking.BookingTime = req.BookingTime
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) findOwnedBooking(ctx context.Context, customerID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.CustomerID != customerID {
		return nil, ErrBookingNotOwned
	}
	return booking, nil
}

// generateBookingCode generates a unique booking code: BK-YYYYMMDD-XXXXXX
func generateBookingCode(bookingDate time.Time) string {
	dateStr := bookingDate.Format("20060102")
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	randomStr := fmt.Sprintf("%06X", randomBytes)
	return fmt.Sprintf("BK-%s-%s", dateStr, randomStr)
}
