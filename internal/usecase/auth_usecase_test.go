package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ombaro-backend/config"
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/access"
	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubOTPStore struct {
	codes map[string]string
}

func newStubOTPStore() *stubOTPStore {
	return &stubOTPStore{codes: map[string]string{}}
}

func (s *stubOTPStore) Save(_ context.Context, mobile, code string, _ time.Duration) error {
	s.codes[mobile] = code
	return nil
}

func (s *stubOTPStore) Get(_ context.Context, mobile string) (string, error) {
	return s.codes[mobile], nil
}

func (s *stubOTPStore) Delete(_ context.Context, mobile string) error {
	delete(s.codes, mobile)
	return nil
}

type stubTokenStore struct {
	refresh map[string]bool
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{refresh: map[string]bool{}}
}

func (s *stubTokenStore) SaveAccessToken(_ context.Context, _, _ string, _ time.Duration) error {
	return nil
}

func (s *stubTokenStore) SaveRefreshToken(_ context.Context, userID, tokenID string, _ time.Duration) error {
	s.refresh[userID+":"+tokenID] = true
	return nil
}

func (s *stubTokenStore) AccessTokenExists(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}

func (s *stubTokenStore) RefreshTokenExists(_ context.Context, userID, tokenID string) (bool, error) {
	return s.refresh[userID+":"+tokenID], nil
}

func (s *stubTokenStore) DeleteRefreshToken(_ context.Context, userID, tokenID string) error {
	delete(s.refresh, userID+":"+tokenID)
	return nil
}

func (s *stubTokenStore) DeleteAllForUser(_ context.Context, _ string) error {
	return nil
}

type stubUserRepo struct {
	created      []*entity.User
	markVerified int
}

func (s *stubUserRepo) Create(_ *gorm.DB, user *entity.User) error {
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserRepo) FindByID(_ *gorm.DB, _ uuid.UUID) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByMobile(_ *gorm.DB, _ string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(_ *gorm.DB, _ *entity.User) error {
	return nil
}

func (s *stubUserRepo) MarkVerified(_ *gorm.DB, _ uuid.UUID) error {
	s.markVerified++
	return nil
}

type stubAuditService struct{}

func (stubAuditService) Log(_ context.Context, _ *gorm.DB, _ *uuid.UUID, _ string, _ entity.JSON) error {
	return nil
}

func (stubAuditService) LogChange(_ context.Context, _ *gorm.DB, _ *uuid.UUID, _, _, _ string, _, _ interface{}) error {
	return nil
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func testAuthUsecase(users *stubUserRepo, otps *stubOTPStore, tokens *stubTokenStore) *authUsecase {
	log := logrus.New()
	return &authUsecase{
		log:          log,
		env:          "development",
		userRepo:     users,
		registry:     access.NewRegistry(),
		jwtService:   testJWTService(),
		otpStore:     otps,
		tokenStore:   tokens,
		auditService: stubAuditService{},
		otpExpiry:    5 * time.Minute,
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	users := &stubUserRepo{}
	otps := newStubOTPStore()
	otps.codes["9876543210"] = "1234"
	u := testAuthUsecase(users, otps, newStubTokenStore())

	_, err := u.VerifyOTP(context.Background(), &dto.VerifyOTPRequest{
		Mobile: "9876543210",
		OTP:    "0000",
	})
	if !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}

	// wrong code must not touch the account
	if len(users.created) != 0 || users.markVerified != 0 {
		t.Error("user state changed on invalid OTP")
	}
	if otps.codes["9876543210"] != "1234" {
		t.Error("OTP consumed on invalid attempt")
	}
}

func TestVerifyOTPNoPendingCode(t *testing.T) {
	u := testAuthUsecase(&stubUserRepo{}, newStubOTPStore(), newStubTokenStore())

	_, err := u.VerifyOTP(context.Background(), &dto.VerifyOTPRequest{
		Mobile: "9876543210",
		OTP:    "1234",
	})
	if !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestGenerateOTPOutsideProduction(t *testing.T) {
	u := &authUsecase{env: "development"}
	code, err := u.generateOTP()
	if err != nil {
		t.Fatalf("generateOTP: %v", err)
	}
	if code != "1234" {
		t.Fatalf("expected fixed dev code 1234, got %s", code)
	}
}

func TestGenerateOTPProduction(t *testing.T) {
	u := &authUsecase{env: "production"}
	code, err := u.generateOTP()
	if err != nil {
		t.Fatalf("generateOTP: %v", err)
	}
	if len(code) != 4 {
		t.Fatalf("expected 4 digit code, got %q", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("non-numeric OTP %q", code)
		}
	}
}

func TestPortalLoginUnknownRole(t *testing.T) {
	u := testAuthUsecase(&stubUserRepo{}, newStubOTPStore(), newStubTokenStore())

	_, err := u.PortalLogin(context.Background(), &dto.PortalLoginRequest{
		Mobile:   "9876543210",
		Password: "secret",
		Role:     "no_such_role",
	})
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	u := testAuthUsecase(&stubUserRepo{}, newStubOTPStore(), newStubTokenStore())

	token, _, err := u.jwtService.GenerateAccessToken(uuid.New(), "9876543210", access.RoleCustomer)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: token})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshTokenRevoked(t *testing.T) {
	u := testAuthUsecase(&stubUserRepo{}, newStubOTPStore(), newStubTokenStore())

	// a valid refresh token whose ID was never stored is revoked
	token, _, err := u.jwtService.GenerateRefreshToken(uuid.New(), "9876543210", access.RoleCustomer)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: token})
	if !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}
