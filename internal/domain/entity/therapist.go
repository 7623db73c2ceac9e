package entity

import (
	"time"

	"github.com/google/uuid"
)

// TherapistAvailability tracks whether a therapist can take new assignments
type TherapistAvailability string

const (
	TherapistAvailable TherapistAvailability = "available"
	TherapistBusy      TherapistAvailability = "busy"
	TherapistOffline   TherapistAvailability = "offline"
)

// Therapist represents a service professional employed by a vendor
type Therapist struct {
	ID                 uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VendorID           uuid.UUID             `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Name               string                `gorm:"type:varchar(255);not null" json:"name"`
	Email              string                `gorm:"type:varchar(255)" json:"email,omitempty"`
	Mobile             string                `gorm:"type:varchar(20);not null" json:"mobile"`
	Specialization     string                `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	ExperienceYears    int                   `gorm:"not null;default:0" json:"experience_years"`
	Rating             float64               `gorm:"not null;default:0" json:"rating"`
	Status             string                `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	AvailabilityStatus TherapistAvailability `gorm:"type:varchar(20);not null;default:'offline';index" json:"availability_status"`
	Latitude           float64               `json:"latitude"`
	Longitude          float64               `json:"longitude"`
	LocationUpdatedAt  *time.Time            `json:"location_updated_at,omitempty"`
	CreatedAt          time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time             `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vendor   Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Bookings []Booking `gorm:"foreignKey:TherapistID" json:"bookings,omitempty"`
}

func (Therapist) TableName() string {
	return "therapists"
}

func (t *Therapist) IsAvailable() bool {
	return t.Status == "active" && t.AvailabilityStatus == TherapistAvailable
}
