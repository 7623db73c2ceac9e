package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorStatus represents the lifecycle of a vendor account
type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusActive    VendorStatus = "active"
	VendorStatusSuspended VendorStatus = "suspended"
)

// Vendor represents a spa/salon partner on the marketplace
type Vendor struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BusinessName string       `gorm:"type:varchar(255);not null;index" json:"business_name"`
	OwnerName    string       `gorm:"type:varchar(255);not null" json:"owner_name"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Mobile       string       `gorm:"type:varchar(20);not null" json:"mobile"`
	Address      string       `gorm:"type:text" json:"address,omitempty"`
	Latitude     float64      `gorm:"not null" json:"latitude"`
	Longitude    float64      `gorm:"not null" json:"longitude"`
	Rating       float64      `gorm:"not null;default:0;index" json:"rating"`
	Status       VendorStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Services   []VendorService `gorm:"foreignKey:VendorID" json:"services,omitempty"`
	Therapists []Therapist     `gorm:"foreignKey:VendorID" json:"therapists,omitempty"`
}

func (Vendor) TableName() string {
	return "vendors"
}

func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// VendorService is one bookable service offered by a vendor
type VendorService struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	IsActive        *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Vendor Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

func (VendorService) TableName() string {
	return "vendor_services"
}
