package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type UpdateAvailabilityRequest struct {
	AvailabilityStatus string `json:"availability_status" validate:"required,oneof=available busy offline"`
}

// Response DTOs

type TherapistResponse struct {
	ID                 uuid.UUID `json:"id"`
	VendorID           uuid.UUID `json:"vendor_id"`
	Name               string    `json:"name"`
	Mobile             string    `json:"mobile"`
	Specialization     string    `json:"specialization,omitempty"`
	ExperienceYears    int       `json:"experience_years"`
	Rating             float64   `json:"rating"`
	AvailabilityStatus string    `json:"availability_status"`
	CreatedAt          time.Time `json:"created_at"`
}

type TherapistListResponse struct {
	Therapists []TherapistResponse `json:"therapists"`
	Total      int                 `json:"total"`
}
