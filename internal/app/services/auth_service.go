package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/metrics"
)

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	studentRepo repositories.IStudentRepository
	adminRepo   repositories.IAdminRepository
	jwtService  *auth.JWTService
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	adminRepo repositories.IAdminRepository,
	jwtService *auth.JWTService,
	m *metrics.Metrics,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
		metrics:     m,
		logger:      logger,
	}
}

// Login verifies the credentials of a student or admin and issues a token.
// Unknown identifiers and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	userType := models.UserType(strings.ToLower(strings.TrimSpace(req.UserType)))
	if !userType.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidUserType, "Invalid user type").
			WithKind(apperrors.ErrValidationFailed)
	}

	identifier, field := strings.TrimSpace(req.StudentID), "studentId"
	if userType == models.UserTypeAdmin {
		identifier, field = strings.TrimSpace(req.Username), "username"
	}
	if identifier == "" {
		return nil, apperrors.NewValidationError(field + " is required")
	}

	cred, err := s.lookup(ctx, userType, identifier)
	if err != nil {
		if isNotFound(err) {
			auth.BurnPasswordCheck(req.Password)
			s.metrics.ObserveLogin(string(userType), false)
			s.logger.Info().Str("userType", string(userType)).Msg("Login failed: unknown identifier")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading credentials: %w", err)
	}

	if !auth.CheckPassword(cred.PasswordHash, req.Password) {
		s.metrics.ObserveLogin(string(userType), false)
		s.logger.Info().Str("userType", string(userType)).Msg("Login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(cred.ID, string(userType), cred.Identifier)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.metrics.ObserveLogin(string(userType), true)
	s.logger.Info().
		Str("userType", string(userType)).
		Int64("userID", cred.ID).
		Msg("User logged in")

	return &dto.TokenResponse{Token: token}, nil
}

func (s *authServiceImpl) lookup(ctx context.Context, userType models.UserType, identifier string) (*models.Credential, error) {
	if userType == models.UserTypeAdmin {
		return s.adminRepo.GetCredential(ctx, identifier)
	}
	return s.studentRepo.GetCredential(ctx, identifier)
}

func isNotFound(err error) bool {
	return apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrProgramNotFound,
		apperrors.ErrUnitNotFound,
	)
}
