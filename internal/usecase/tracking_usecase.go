package usecase

import (
	"context"
	"errors"

	"ombaro-backend/internal/converter"
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/internal/domain/repository"
	"ombaro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotInLifecycle = errors.New("booking is not in the service lifecycle")
	ErrBookingCompleted      = errors.New("booking is already completed")
	ErrTransitionConflict    = errors.New("booking status changed, retry")
	ErrTherapistNotFound     = errors.New("therapist not found")
	ErrNoTherapistAvailable  = errors.New("no therapist available for this vendor")
	ErrTherapistWrongVendor  = errors.New("therapist does not belong to the booking's vendor")
	ErrAssignmentRequired    = errors.New("booking must have a therapist before it can advance")
)

type TrackingUsecase interface {
	// AdvanceBooking moves a booking one step forward in the lifecycle.
	AdvanceBooking(ctx context.Context, operatorID, bookingID uuid.UUID) (*dto.StatusInfoResponse, error)
	// AssignTherapist performs the confirmed -> therapist-assigned step,
	// picking from the vendor's available pool when no explicit therapist
	// is requested.
	AssignTherapist(ctx context.Context, operatorID, bookingID uuid.UUID, req *dto.AssignTherapistRequest) (*dto.BookingResponse, error)
	// GetTracking assembles the live tracking view for a customer's booking.
	GetTracking(ctx context.Context, customerID, bookingID uuid.UUID) (*dto.TrackingResponse, error)
}

type trackingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	therapistRepo   repository.TherapistRepository
	trackingService *service.LiveTrackingService
	auditService    service.AuditService
}

func NewTrackingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	therapistRepo repository.TherapistRepository,
	trackingService *service.LiveTrackingService,
	auditService service.AuditService,
) TrackingUsecase {
	return &trackingUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		therapistRepo:   therapistRepo,
		trackingService: trackingService,
		auditService:    auditService,
	}
}

// AdvanceBooking is the single write path for forward lifecycle movement.
// The database update is a compare-and-set on the current status, so two
// operators advancing the same booking concurrently produce exactly one
// step, and the loser sees a conflict.
func (u *trackingUsecase) AdvanceBooking(ctx context.Context, operatorID, bookingID uuid.UUID) (*dto.StatusInfoResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.Status.InLifecycle() {
		return nil, ErrBookingNotInLifecycle
	}
	if booking.Status.IsTerminal() {
		return nil, ErrBookingCompleted
	}

	next, _ := booking.Status.Next()

	// confirmed -> therapist-assigned goes through AssignTherapist so the
	// assignment is recorded with the transition
	if next == entity.BookingStatusTherapistAssigned && booking.TherapistID == nil {
		return nil, ErrAssignmentRequired
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.bookingRepo.UpdateStatus(tx, bookingID, booking.Status, next)
	if err != nil {
		u.log.Warnf("Failed to advance booking %s: %+v", bookingID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrTransitionConflict
	}

	if err := u.auditService.Log(ctx, tx, &operatorID, entity.AuditActionBookingAdvance, entity.JSON{
		"booking_id": bookingID.String(),
		"from":       string(booking.Status),
		"to":         string(next),
	}); err != nil {
		u.log.Warnf("Failed to audit booking advance: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.trackingService.PublishBookingStatus(ctx, bookingID, next)

	// therapist frees up once the appointment ends
	if next == entity.BookingStatusCompleted && booking.TherapistID != nil {
		if err := u.therapistRepo.UpdateAvailability(u.db.WithContext(ctx), *booking.TherapistID, entity.TherapistAvailable); err != nil {
			u.log.Warnf("Failed to release therapist %s: %+v", *booking.TherapistID, err)
		}
	}

	u.log.Infof("Booking advanced: id=%s, %s -> %s", bookingID, booking.Status, next)
	info := converter.StatusToInfoResponse(next)
	return &info, nil
}

func (u *trackingUsecase) AssignTherapist(ctx context.Context, operatorID, bookingID uuid.UUID, req *dto.AssignTherapistRequest) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, ErrBookingNotInLifecycle
	}

	therapist, err := u.pickTherapist(ctx, booking.VendorID, req.TherapistID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.AssignTherapist(tx, bookingID, therapist.ID); err != nil {
		u.log.Warnf("Failed to assign therapist to booking %s: %+v", bookingID, err)
		return nil, err
	}

	affected, err := u.bookingRepo.UpdateStatus(tx, bookingID, entity.BookingStatusConfirmed, entity.BookingStatusTherapistAssigned)
	if err != nil {
		u.log.Warnf("Failed to advance booking %s: %+v", bookingID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrTransitionConflict
	}

	if err := u.therapistRepo.UpdateAvailability(tx, therapist.ID, entity.TherapistBusy); err != nil {
		u.log.Warnf("Failed to mark therapist %s busy: %+v", therapist.ID, err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &operatorID, entity.AuditActionTherapistAssign, entity.JSON{
		"booking_id":   bookingID.String(),
		"therapist_id": therapist.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to audit therapist assignment: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.TherapistID = &therapist.ID
	booking.Therapist = therapist
	booking.Status = entity.BookingStatusTherapistAssigned
	u.trackingService.PublishBookingStatus(ctx, bookingID, booking.Status)

	u.log.Infof("Therapist assigned: booking=%s, therapist=%s", bookingID, therapist.ID)
	return converter.BookingToResponse(booking), nil
}

// GetTracking returns the customer-facing view: current status presentation,
// the full lifecycle timeline, and the therapist's live position when one is
// en route. The Redis mirror is consulted first; a miss falls back to the
// booking row.
func (u *trackingUsecase) GetTracking(ctx context.Context, customerID, bookingID uuid.UUID) (*dto.TrackingResponse, error) {
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

	status := booking.Status
	if mirrored, ok := u.trackingService.GetBookingStatus(ctx, bookingID); ok {
		status = mirrored
	}

	resp := &dto.TrackingResponse{
		Booking:    *converter.BookingToResponse(booking),
		StatusInfo: converter.StatusToInfoResponse(status),
		Timeline:   converter.LifecycleTimeline(),
	}

	if booking.TherapistID != nil {
		therapist, err := u.therapistRepo.FindByID(u.db.WithContext(ctx), *booking.TherapistID)
		if err != nil {
			u.log.Warnf("Failed to find therapist %s: %+v", *booking.TherapistID, err)
		} else if therapist != nil {
			resp.Therapist = converter.TherapistToResponse(therapist)
		}

		if loc, ok := u.trackingService.GetTherapistLocation(ctx, *booking.TherapistID); ok {
			resp.Location = &dto.LocationResponse{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
				UpdatedAt: loc.UpdatedAt,
			}
		}
	}

	return resp, nil
}

func (u *trackingUsecase) pickTherapist(ctx context.Context, vendorID uuid.UUID, requestedID string) (*entity.Therapist, error) {
	if requestedID != "" {
		id, err := uuid.Parse(requestedID)
		if err != nil {
			return nil, ErrTherapistNotFound
		}
		therapist, err := u.therapistRepo.FindByID(u.db.WithContext(ctx), id)
		if err != nil {
			u.log.Warnf("Failed to find therapist %s: %+v", id, err)
			return nil, err
		}
		if therapist == nil {
			return nil, ErrTherapistNotFound
		}
		if therapist.VendorID != vendorID {
			return nil, ErrTherapistWrongVendor
		}
		if !therapist.IsAvailable() {
			return nil, ErrNoTherapistAvailable
		}
		return therapist, nil
	}

	available, err := u.therapistRepo.FindAvailableByVendor(u.db.WithContext(ctx), vendorID)
	if err != nil {
		u.log.Warnf("Failed to find available therapists for vendor %s: %+v", vendorID, err)
		return nil, err
	}
	if len(available) == 0 {
		return nil, ErrNoTherapistAvailable
	}
	return &available[0], nil
}
