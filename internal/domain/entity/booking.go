package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks whether the booking has been paid for.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents a customer appointment at a vendor
type Booking struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingCode   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	VendorID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	TherapistID   *uuid.UUID      `gorm:"type:uuid;index" json:"therapist_id,omitempty"`
	BookingDate   time.Time       `gorm:"type:date;not null;index" json:"booking_date"`
	BookingTime   string          `gorm:"type:time;not null" json:"booking_time"`
	Address       string          `gorm:"type:text;not null" json:"address"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	ServiceCharge decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"service_charge"`
	GST           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"gst"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status        BookingStatus   `gorm:"type:varchar(30);not null;default:'pending_payment';index" json:"status"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer  User          `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vendor    Vendor        `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Therapist *Therapist    `gorm:"foreignKey:TherapistID" json:"therapist,omitempty"`
	Items     []BookingItem `gorm:"foreignKey:BookingID" json:"items,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingItem is one selected service line on a booking. Price is captured at
// booking time so later catalog edits don't change history.
type BookingItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	ServiceID uuid.UUID       `gorm:"type:uuid;not null" json:"service_id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	Service VendorService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (BookingItem) TableName() string {
	return "booking_items"
}

// CurrentState returns the booking's lifecycle state.
func (b *Booking) CurrentState() BookingStatus {
	return b.Status
}

// Advance moves the booking one step forward in the service lifecycle and
// returns the resulting state. Idempotent at the terminal state: advancing a
// completed booking returns completed unchanged. Advancing a booking outside
// the lifecycle (pending payment, cancelled) is a no-op.
func (b *Booking) Advance() BookingStatus {
	next, ok := b.Status.Next()
	if !ok {
		return b.Status
	}
	b.Status = next
	return b.Status
}

// Reset returns the booking to the initial lifecycle state.
func (b *Booking) Reset() {
	b.Status = BookingStatusConfirmed
}

// Confirm enters the lifecycle after a successful payment.
func (b *Booking) Confirm() {
	b.Status = BookingStatusConfirmed
	b.PaymentStatus = PaymentStatusPaid
}

// Cancel marks the booking cancelled. Callers decide whether the current
// state allows it.
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// ServiceStarted reports whether the therapist work has begun; bookings past
// this point can no longer be cancelled or rescheduled.
func (b *Booking) ServiceStarted() bool {
	switch b.Status {
	case BookingStatusInProgress, BookingStatusCompleted:
		return true
	}
	return false
}
