package usecase

import (
	"context"
	"errors"
	"testing"

	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubTherapistRepo struct {
	availability map[uuid.UUID]entity.TherapistAvailability
}

func (s *stubTherapistRepo) FindByID(_ *gorm.DB, _ uuid.UUID) (*entity.Therapist, error) {
	return nil, nil
}

func (s *stubTherapistRepo) FindByVendor(_ *gorm.DB, _ uuid.UUID) ([]entity.Therapist, error) {
	return nil, nil
}

func (s *stubTherapistRepo) FindAvailableByVendor(_ *gorm.DB, _ uuid.UUID) ([]entity.Therapist, error) {
	return nil, nil
}

func (s *stubTherapistRepo) UpdateAvailability(_ *gorm.DB, id uuid.UUID, status entity.TherapistAvailability) error {
	if s.availability == nil {
		s.availability = map[uuid.UUID]entity.TherapistAvailability{}
	}
	s.availability[id] = status
	return nil
}

func (s *stubTherapistRepo) UpdateLocation(_ *gorm.DB, _ uuid.UUID, _, _ float64) error {
	return nil
}

func testTrackingUsecase(t *testing.T, bookings repository.BookingRepository, therapists *stubTherapistRepo) *trackingUsecase {
	t.Helper()
	return &trackingUsecase{
		db:              testGormDB(t),
		log:             testLogger(),
		bookingRepo:     bookings,
		therapistRepo:   therapists,
		trackingService: testTrackingService(),
		auditService:    stubAuditService{},
	}
}

func TestAdvanceBookingConcurrentSingleStep(t *testing.T) {
	bookingID := uuid.New()
	repo := &casBookingRepo{
		view: entity.Booking{
			ID:         bookingID,
			CustomerID: uuid.New(),
			VendorID:   uuid.New(),
			Status:     entity.BookingStatusEnRoute,
		},
		status: entity.BookingStatusEnRoute,
	}
	u := testTrackingUsecase(t, repo, &stubTherapistRepo{})

	info, err := u.AdvanceBooking(context.Background(), uuid.New(), bookingID)
	if err != nil {
		t.Fatalf("first advance: %v", err)
	}
	if info.Status != string(entity.BookingStatusArrived) {
		t.Fatalf("first advance: got %s, want arrived", info.Status)
	}

	// the second operator read the same en-route row and must lose the
	// compare-and-set
	_, err = u.AdvanceBooking(context.Background(), uuid.New(), bookingID)
	if !errors.Is(err, ErrTransitionConflict) {
		t.Fatalf("expected ErrTransitionConflict, got %v", err)
	}
	if repo.status != entity.BookingStatusArrived {
		t.Fatalf("booking moved more than one step: %s", repo.status)
	}
}

func TestAdvanceBookingRequiresAssignment(t *testing.T) {
	bookingID := uuid.New()
	repo := &casBookingRepo{
		view: entity.Booking{
			ID:         bookingID,
			CustomerID: uuid.New(),
			VendorID:   uuid.New(),
			Status:     entity.BookingStatusConfirmed,
		},
		status: entity.BookingStatusConfirmed,
	}
	u := testTrackingUsecase(t, repo, &stubTherapistRepo{})

	_, err := u.AdvanceBooking(context.Background(), uuid.New(), bookingID)
	if !errors.Is(err, ErrAssignmentRequired) {
		t.Fatalf("expected ErrAssignmentRequired, got %v", err)
	}
	if repo.status != entity.BookingStatusConfirmed {
		t.Fatalf("booking moved without a therapist: %s", repo.status)
	}
}

func TestAdvanceBookingReleasesTherapistOnCompletion(t *testing.T) {
	bookingID := uuid.New()
	therapistID := uuid.New()
	repo := &casBookingRepo{
		view: entity.Booking{
			ID:          bookingID,
			CustomerID:  uuid.New(),
			VendorID:    uuid.New(),
			TherapistID: &therapistID,
			Status:      entity.BookingStatusInProgress,
		},
		status: entity.BookingStatusInProgress,
	}
	therapists := &stubTherapistRepo{}
	u := testTrackingUsecase(t, repo, therapists)

	info, err := u.AdvanceBooking(context.Background(), uuid.New(), bookingID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if info.Status != string(entity.BookingStatusCompleted) {
		t.Fatalf("got %s, want completed", info.Status)
	}
	if therapists.availability[therapistID] != entity.TherapistAvailable {
		t.Fatalf("therapist not released: %v", therapists.availability[therapistID])
	}
}
