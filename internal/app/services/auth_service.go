package services

import (
	"context"
	"errors"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
	"github.com/rawad/acadex/internal/pkg/auth"
	"github.com/rawad/acadex/internal/pkg/logger"
)

// AuthService handles registration, privileged account creation and login
type AuthService struct {
	userRepo       *repositories.UserRepository
	departmentRepo *repositories.DepartmentRepository
	jwtService     *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	departmentRepo *repositories.DepartmentRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
	}
}

// RegisterStudent creates a student account from a public registration request
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetDepartmentByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Password:     hashedPassword,
		Role:         models.RoleStudent,
		AcademicYear: req.AcademicYear,
		DepartmentID: req.DepartmentID,
		Phone:        req.Phone,
		IsActive:     true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userId", id).Str("username", user.Username).Msg("Student registered")
	return user, nil
}

// CreateAccount creates an account with the given privileged role.
// The caller's own role is checked at the route level.
func (s *AuthService) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role")
	}

	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Role:     role,
		Phone:    req.Phone,
		IsActive: true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userId", id).Str("role", string(role)).Msg("Account created")
	return user, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is informational
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login time")
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User:        toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Role:         string(user.Role),
		AcademicYear: user.AcademicYear,
		DepartmentID: user.DepartmentID,
		Phone:        user.Phone,
	}
}
