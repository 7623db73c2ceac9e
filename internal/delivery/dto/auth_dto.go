package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SendOTPRequest struct {
	Mobile string `json:"mobile" validate:"required,len=10,numeric"`
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required,len=10,numeric"`
	OTP    string `json:"otp" validate:"required,len=4,numeric"`
}

type CompleteProfileRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

type PortalLoginRequest struct {
	Mobile   string `json:"mobile" validate:"required,len=10,numeric"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Mobile      string    `json:"mobile"`
	Email       string    `json:"email,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Role        string    `json:"role"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}

type OTPSentResponse struct {
	Mobile    string `json:"mobile"`
	ExpiresIn int64  `json:"expires_in"`
}
