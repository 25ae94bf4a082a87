package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/repositories"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/auth"
	"github.com/emre/eventra/internal/pkg/email"
	"github.com/emre/eventra/internal/pkg/logger"
	"github.com/emre/eventra/internal/pkg/validation"
)

const passwordResetTokenTTL = time.Hour

// TxRunner executes a function within a database transaction
type TxRunner func(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, userEmail string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	tokenRepo  repositories.ITokenRepository
	jwtService *auth.JWTService
	mailer     email.EmailService
	runInTx    TxRunner
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	mailer email.EmailService,
	runInTx TxRunner,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		mailer:     mailer,
		runInTx:    runInTx,
	}
}

// Register creates a new user account. The role profile is completed in a
// second step, so only the identity row is written here.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if !models.ValidRole(role) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role: %s", req.Role))
	}

	if !validation.ValidUsername(req.Username) {
		return nil, apperrors.NewValidationError("username must be 3 to 30 characters of letters, digits or the symbols ._-!@#$%^&*")
	}
	if !validation.ValidPhoneNumber(req.PhoneNumber) {
		return nil, apperrors.NewValidationError("invalid phone number format")
	}
	if !validation.StrongPassword(req.Password) {
		return nil, apperrors.NewValidationError("password must be at least 8 characters and contain a letter and a digit")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password during registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:        req.Name,
		Username:    req.Username,
		UserEmail:   req.UserEmail,
		Password:    hashedPassword,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		IsActive:    models.StatusActive,
	}

	err = s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendWelcomeEmail(user.UserEmail, user.Name); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to send welcome email")
	}

	return s.buildAuthResponse(ctx, user)
}

// Login authenticates a user by username and password
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Same error as a wrong password so usernames cannot be enumerated.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsActive != models.StatusActive {
		logger.Warn().Int64("userID", user.ID).Msg("Login attempt on inactive account")
		return nil, apperrors.ErrAccountInactive
	}

	return s.buildAuthResponse(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The presented token is revoked so each token can be used once.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		logger.Warn().Int64("userID", stored.UserID).Msg("Attempted reuse of revoked refresh token")
		return nil, apperrors.ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsActive != models.StatusActive {
		return nil, apperrors.ErrAccountInactive
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// ForgotPassword issues a password reset token and emails it to the user.
// An unknown email is not an error, so account existence stays private.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, userEmail string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Debug().Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.New().String()
	expires := time.Now().Add(passwordResetTokenTTL)

	if err := s.userRepo.SetResetPasswordToken(ctx, user.ID, token, expires); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(user.UserEmail, user.Name, token); err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to send password reset email")
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token and stores the new password.
// All refresh tokens of the user are revoked afterwards.
func (s *authServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.GetUserByResetToken(ctx, token)
	if err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to revoke refresh tokens after password reset")
	}

	logger.Info().Int64("userID", user.ID).Msg("Password reset completed")
	return nil
}

func (s *authServiceImpl) buildAuthResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *tokens,
		User:  ToUserResponse(user),
	}, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateRefreshToken(ctx, user.ID, refreshToken, expiry); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
