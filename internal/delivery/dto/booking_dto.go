package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	VendorID    string   `json:"vendor_id" validate:"required,uuid"`
	ServiceIDs  []string `json:"service_ids" validate:"required,min=1,dive,uuid"`
	BookingDate string   `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime string   `json:"booking_time" validate:"required,datetime=15:04"`
	Address     string   `json:"address" validate:"required,min=10"`
}

type ConfirmPaymentRequest struct {
	Method         string `json:"method" validate:"required,oneof=upi card netbanking cash"`
	TransactionRef string `json:"transaction_ref" validate:"omitempty,max=100"`
}

type RescheduleBookingRequest struct {
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime string `json:"booking_time" validate:"required,datetime=15:04"`
}

type AssignTherapistRequest struct {
	TherapistID string `json:"therapist_id" validate:"omitempty,uuid"`
}

// Response DTOs

type QuoteResponse struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	GST           decimal.Decimal `json:"gst"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

type BookingItemResponse struct {
	ServiceID uuid.UUID       `json:"service_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	BookingCode   string                `json:"booking_code"`
	CustomerID    uuid.UUID             `json:"customer_id"`
	VendorID      uuid.UUID             `json:"vendor_id"`
	TherapistID   *uuid.UUID            `json:"therapist_id,omitempty"`
	BookingDate   string                `json:"booking_date"`
	BookingTime   string                `json:"booking_time"`
	Address       string                `json:"address"`
	Items         []BookingItemResponse `json:"items"`
	Quote         QuoteResponse         `json:"quote"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	Vendor        *VendorResponse       `json:"vendor,omitempty"`
	Therapist     *TherapistResponse    `json:"therapist,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// StatusInfoResponse mirrors the lifecycle presentation lookup.
type StatusInfoResponse struct {
	Status           string `json:"status"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	EstimatedArrival string `json:"estimated_arrival,omitempty"`
}

type TrackingResponse struct {
	Booking    BookingResponse     `json:"booking"`
	StatusInfo StatusInfoResponse  `json:"status_info"`
	Timeline   []StatusInfoResponse `json:"timeline"`
	Therapist  *TherapistResponse  `json:"therapist,omitempty"`
	Location   *LocationResponse   `json:"location,omitempty"`
}

type LocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}
