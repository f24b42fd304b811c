package services

import (
	"context"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
)

// UserService handles the doctor directory operations
type UserService struct {
	userRepo    *repositories.UserRepository
	subjectRepo *repositories.SubjectRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, subjectRepo *repositories.SubjectRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		subjectRepo: subjectRepo,
	}
}

// GetAllDoctors lists all doctor accounts
func (s *UserService) GetAllDoctors(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetUsersByRole(ctx, models.RoleDoctor)
}

// CountDoctors returns the number of doctor accounts
func (s *UserService) CountDoctors(ctx context.Context) (int64, error) {
	return s.userRepo.CountUsersByRole(ctx, models.RoleDoctor)
}

// getDoctor loads a user and verifies they hold the doctor role
func (s *UserService) getDoctor(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDoctorNotFound
	}
	if user.Role != models.RoleDoctor {
		return nil, apperrors.ErrDoctorNotFound
	}
	return user, nil
}

// UpdateDoctor updates a doctor's username and/or phone
func (s *UserService) UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*models.User, error) {
	doctor, err := s.getDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != doctor.Username {
		exists, err := s.userRepo.UsernameExists(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrUsernameExists
		}
		doctor.Username = *req.Username
	}
	if req.Phone != nil {
		doctor.Phone = req.Phone
	}

	if err := s.userRepo.UpdateUser(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// DeleteDoctor removes a doctor account
func (s *UserService) DeleteDoctor(ctx context.Context, id int64) error {
	if _, err := s.getDoctor(ctx, id); err != nil {
		return err
	}
	return s.userRepo.DeleteUser(ctx, id)
}

// GetDoctorSubjects lists the subjects a doctor teaches
func (s *UserService) GetDoctorSubjects(ctx context.Context, doctorID int64) ([]*models.Subject, error) {
	if _, err := s.getDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	return s.subjectRepo.GetSubjectsByDoctorID(ctx, doctorID)
}
