package usecase

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/internal/domain/repository"
	"ombaro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Stub database/sql driver: transactions begin and commit against nothing.
// Repository stubs intercept every call, so no statement ever executes.
type stubSQLTx struct{}

func (stubSQLTx) Commit() error   { return nil }
func (stubSQLTx) Rollback() error { return nil }

type stubSQLConn struct{}

func (stubSQLConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (stubSQLConn) Close() error                        { return nil }
func (stubSQLConn) Begin() (driver.Tx, error)           { return stubSQLTx{}, nil }

type stubSQLDriver struct{}

func (stubSQLDriver) Open(string) (driver.Conn, error) { return stubSQLConn{}, nil }

type stubSQLConnector struct{}

func (stubSQLConnector) Connect(context.Context) (driver.Conn, error) { return stubSQLConn{}, nil }
func (stubSQLConnector) Driver() driver.Driver                        { return stubSQLDriver{} }

func testGormDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sql.OpenDB(stubSQLConnector{}),
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		t.Fatalf("open stub db: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testTrackingService() *service.LiveTrackingService {
	// unroutable address; mirror write failures are logged and swallowed
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	return service.NewLiveTrackingService(client, testLogger())
}

// casBookingRepo serves a deliberately stale snapshot from reads while the
// compare-and-set consults the authoritative status, the shape of two
// writers racing on one booking.
type casBookingRepo struct {
	view   entity.Booking
	status entity.BookingStatus
}

func (s *casBookingRepo) Create(_ *gorm.DB, _ *entity.Booking) error { return nil }

func (s *casBookingRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	if id != s.view.ID {
		return nil, nil
	}
	b := s.view
	return &b, nil
}

func (s *casBookingRepo) FindByCustomerID(_ *gorm.DB, _ uuid.UUID) ([]entity.Booking, error) {
	return nil, nil
}

func (s *casBookingRepo) UpdateStatus(_ *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	if id != s.view.ID || s.status != from {
		return 0, nil
	}
	s.status = to
	return 1, nil
}

func (s *casBookingRepo) UpdatePaymentStatus(_ *gorm.DB, _ uuid.UUID, _ entity.PaymentStatus) error {
	return nil
}

func (s *casBookingRepo) AssignTherapist(_ *gorm.DB, _ uuid.UUID, _ uuid.UUID) error { return nil }

func (s *casBookingRepo) UpdateSchedule(_ *gorm.DB, _ uuid.UUID, _, _ string) error { return nil }

type stubPaymentRepo struct {
	created []*entity.Payment
}

func (s *stubPaymentRepo) Create(_ *gorm.DB, p *entity.Payment) error {
	s.created = append(s.created, p)
	return nil
}

func (s *stubPaymentRepo) FindByBookingID(_ *gorm.DB, _ uuid.UUID) (*entity.Payment, error) {
	return nil, nil
}

func testBookingUsecase(t *testing.T, bookings repository.BookingRepository, payments repository.PaymentRepository) *bookingUsecase {
	t.Helper()
	return &bookingUsecase{
		db:              testGormDB(t),
		log:             testLogger(),
		bookingRepo:     bookings,
		paymentRepo:     payments,
		trackingService: testTrackingService(),
		auditService:    stubAuditService{},
	}
}

func TestConfirmPaymentDoubleSubmitCapturesOnce(t *testing.T) {
	customerID := uuid.New()
	bookingID := uuid.New()
	repo := &casBookingRepo{
		view: entity.Booking{
			ID:          bookingID,
			CustomerID:  customerID,
			VendorID:    uuid.New(),
			Status:      entity.BookingStatusPendingPayment,
			TotalAmount: decimal.NewFromInt(4779),
		},
		status: entity.BookingStatusPendingPayment,
	}
	payments := &stubPaymentRepo{}
	u := testBookingUsecase(t, repo, payments)

	resp, err := u.ConfirmPayment(context.Background(), customerID, bookingID, &dto.ConfirmPaymentRequest{Method: "upi"})
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	if resp.Status != string(entity.BookingStatusConfirmed) {
		t.Fatalf("first capture status: got %s, want confirmed", resp.Status)
	}

	// the double submit reads the same pre-capture snapshot and must lose
	// the compare-and-set
	_, err = u.ConfirmPayment(context.Background(), customerID, bookingID, &dto.ConfirmPaymentRequest{Method: "upi"})
	if !errors.Is(err, ErrPaymentAlreadyCaptured) {
		t.Fatalf("expected ErrPaymentAlreadyCaptured, got %v", err)
	}

	if len(payments.created) != 1 {
		t.Fatalf("expected exactly one payment row, got %d", len(payments.created))
	}
	if repo.status != entity.BookingStatusConfirmed {
		t.Fatalf("booking left confirmed: %s", repo.status)
	}
}

func TestConfirmPaymentRejectsNonOwner(t *testing.T) {
	bookingID := uuid.New()
	repo := &casBookingRepo{
		view: entity.Booking{
			ID:         bookingID,
			CustomerID: uuid.New(),
			Status:     entity.BookingStatusPendingPayment,
		},
		status: entity.BookingStatusPendingPayment,
	}
	u := testBookingUsecase(t, repo, &stubPaymentRepo{})

	_, err := u.ConfirmPayment(context.Background(), uuid.New(), bookingID, &dto.ConfirmPaymentRequest{Method: "upi"})
	if !errors.Is(err, ErrBookingNotOwned) {
		t.Fatalf("expected ErrBookingNotOwned, got %v", err)
	}
	if repo.status != entity.BookingStatusPendingPayment {
		t.Fatalf("booking moved: %s", repo.status)
	}
}
