package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized account table. Customers authenticate by
// mobile OTP and may have no password; portal users (departments, admins)
// authenticate by mobile + password.
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Role        string     `gorm:"type:varchar(50);not null;index" json:"role"`
	Mobile      string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"mobile"`
	Email       string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Password    string     `gorm:"type:text" json:"-"`
	FullName    string     `gorm:"type:varchar(255)" json:"full_name,omitempty"`
	Gender      string     `gorm:"type:char(1)" json:"gender,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	IsVerified  bool       `gorm:"not null;default:false" json:"is_verified"`
	IsActive    *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
