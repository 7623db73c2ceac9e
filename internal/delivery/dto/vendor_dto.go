package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	OwnerName    string    `json:"owner_name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	Address      string    `json:"address,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Rating       float64   `json:"rating"`
	Status       string    `json:"status"`
	DistanceKm   *float64  `json:"distance_km,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type VendorListResponse struct {
	Vendors []VendorResponse `json:"vendors"`
	Total   int              `json:"total"`
}

type VendorServiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	VendorID        uuid.UUID       `json:"vendor_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

type VendorServiceListResponse struct {
	Services []VendorServiceResponse `json:"services"`
	Total    int                     `json:"total"`
}
