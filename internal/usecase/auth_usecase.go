package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"ombaro-backend/internal/converter"
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/access"
	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/internal/domain/repository"
	"ombaro-backend/internal/service"
	"ombaro-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidOTP          = errors.New("invalid or expired OTP")
	ErrInvalidCredentials  = errors.New("invalid mobile or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserNotVerified     = errors.New("mobile number is not verified")
	ErrRoleNotFound        = errors.New("role not found")
	ErrMobileAlreadyExists = errors.New("mobile number already registered")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	SendOTP(ctx context.Context, req *dto.SendOTPRequest) (*dto.OTPSentResponse, error)
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.TokenResponse, error)
	CompleteProfile(ctx context.Context, userID uuid.UUID, req *dto.CompleteProfileRequest) (*dto.UserResponse, error)
	PortalLogin(ctx context.Context, req *dto.PortalLoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	env          string
	userRepo     repository.UserRepository
	registry     *access.Registry
	jwtService   *jwt.JWTService
	otpStore     service.OTPStore
	tokenStore   service.TokenStore
	auditService service.AuditService
	otpExpiry    time.Duration
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	env string,
	userRepo repository.UserRepository,
	registry *access.Registry,
	jwtService *jwt.JWTService,
	otpStore service.OTPStore,
	tokenStore service.TokenStore,
	auditService service.AuditService,
	otpExpiry time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		env:          env,
		userRepo:     userRepo,
		registry:     registry,
		jwtService:   jwtService,
		otpStore:     otpStore,
		tokenStore:   tokenStore,
		auditService: auditService,
		otpExpiry:    otpExpiry,
	}
}

// SendOTP generates a one-time code for the mobile number and stores it with
// a TTL. Resending overwrites the previous code. Outside production the code
// is always 1234 so clients can be exercised without an SMS gateway.
func (u *authUsecase) SendOTP(ctx context.Context, req *dto.SendOTPRequest) (*dto.OTPSentResponse, error) {
	code, err := u.generateOTP()
	if err != nil {
		u.log.Warnf("Failed to generate OTP: %+v", err)
		return nil, err
	}

	if err := u.otpStore.Save(ctx, req.Mobile, code, u.otpExpiry); err != nil {
		u.log.Warnf("Failed to store OTP: %+v", err)
		return nil, err
	}

	// SMS dispatch would go here; for now the code only lives in the store.
	u.log.Infof("OTP sent: mobile=%s", req.Mobile)

	if err := u.auditService.Log(ctx, u.db.WithContext(ctx), nil, entity.AuditActionOTPSend, entity.JSON{
		"mobile": req.Mobile,
	}); err != nil {
		u.log.Warnf("Failed to audit OTP send: %+v", err)
	}

	return &dto.OTPSentResponse{
		Mobile:    req.Mobile,
		ExpiresIn: int64(u.otpExpiry.Seconds()),
	}, nil
}

// VerifyOTP checks the submitted code against the store. On a match the user
// is created on first login, marked verified, and issued a token pair. On a
// mismatch nothing changes and the user stays unverified.
func (u *authUsecase) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
	stored, err := u.otpStore.Get(ctx, req.Mobile)
	if err != nil {
		u.log.Warnf("Failed to read OTP: %+v", err)
		return nil, err
	}
	if stored == "" || stored != req.OTP {
		return nil, ErrInvalidOTP
	}

	if err := u.otpStore.Delete(ctx, req.Mobile); err != nil {
		u.log.Warnf("Failed to delete consumed OTP: %+v", err)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByMobile(tx, req.Mobile)
	if err != nil {
		u.log.Warnf("Failed to find user by mobile: %+v", err)
		return nil, err
	}

	registered := false
	if user == nil {
		user = &entity.User{
			Role:       access.RoleCustomer,
			Mobile:     req.Mobile,
			IsVerified: true,
		}
		if err := u.userRepo.Create(tx, user); err != nil {
			if isDuplicateKeyError(err, "mobile") {
				return nil, ErrMobileAlreadyExists
			}
			u.log.Warnf("Failed to create user: %+v", err)
			return nil, err
		}
		registered = true
	} else if !user.IsVerified {
		if err := u.userRepo.MarkVerified(tx, user.ID); err != nil {
			u.log.Warnf("Failed to mark user verified: %+v", err)
			return nil, err
		}
		user.IsVerified = true
	}

	action := entity.AuditActionUserLogin
	if registered {
		action = entity.AuditActionUserRegister
	}
	if err := u.auditService.Log(ctx, tx, &user.ID, action, entity.JSON{
		"mobile": user.Mobile,
		"role":   user.Role,
	}); err != nil {
		u.log.Warnf("Failed to audit OTP verification: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

// CompleteProfile fills in the customer's details after OTP verification.
func (u *authUsecase) CompleteProfile(ctx context.Context, userID uuid.UUID, req *dto.CompleteProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}

	user.FullName = req.FullName
	user.Email = req.Email
	user.Gender = req.Gender
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		user.DateOfBirth = &dob
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &user.ID, entity.AuditActionProfileUpdate, entity.JSON{
		"full_name": user.FullName,
	}); err != nil {
		u.log.Warnf("Failed to audit profile update: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// PortalLogin authenticates a departmental user by mobile and password. The
// requested role must be a known role definition and must match the account.
func (u *authUsecase) PortalLogin(ctx context.Context, req *dto.PortalLoginRequest) (*dto.TokenResponse, error) {
	if _, ok := u.registry.ResolveRole(req.Role); !ok {
		return nil, ErrRoleNotFound
	}

	user, err := u.userRepo.FindByMobile(u.db.WithContext(ctx), req.Mobile)
	if err != nil {
		u.log.Warnf("Failed to find user by mobile: %+v", err)
		return nil, err
	}
	if user == nil || user.Password == "" || user.Role != req.Role {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.auditService.Log(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, entity.JSON{
		"mobile": user.Mobile,
		"role":   user.Role,
		"portal": true,
	}); err != nil {
		u.log.Warnf("Failed to audit portal login: %+v", err)
	}

	return u.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the old token ID is revoked and a new
// access/refresh pair is issued.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenStore.RefreshTokenExists(ctx, claims.UserID.String(), claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	if err := u.tokenStore.DeleteRefreshToken(ctx, claims.UserID.String(), claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

// Logout revokes every live token for the user.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := u.tokenStore.DeleteAllForUser(ctx, userID.String()); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}

	if err := u.auditService.Log(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, nil); err != nil {
		u.log.Warnf("Failed to audit logout: %+v", err)
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Mobile, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Mobile, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.SaveAccessToken(ctx, user.ID.String(), accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.tokenStore.SaveRefreshToken(ctx, user.ID.String(), refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:         converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) generateOTP() (string, error) {
	if u.env != "production" {
		return "1234", nil
	}

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
