package services

import (
	"context"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
)

// MessageService handles the store-and-forward notes between students and doctors
type MessageService struct {
	messageRepo *repositories.MessageRepository
	userRepo    *repositories.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo *repositories.MessageRepository, userRepo *repositories.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SendMessage stores a message after validating both endpoints
func (s *MessageService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	student, err := s.userRepo.GetUserByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student.Role != models.RoleStudent {
		return nil, apperrors.NewValidationError("studentId must reference a student account")
	}

	doctor, err := s.userRepo.GetUserByID(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Role != models.RoleDoctor {
		return nil, apperrors.ErrInvalidDoctorRole
	}

	message := &models.Message{
		StudentID:   req.StudentID,
		DoctorID:    req.DoctorID,
		MessageText: req.MessageText,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetDoctorInbox lists the messages sent to a doctor, newest first
func (s *MessageService) GetDoctorInbox(ctx context.Context, doctorID int64) ([]*models.Message, error) {
	return s.messageRepo.GetMessagesByDoctorID(ctx, doctorID)
}

// GetStudentMessages lists the messages a student has sent, newest first
func (s *MessageService) GetStudentMessages(ctx context.Context, studentID int64) ([]*models.Message, error) {
	return s.messageRepo.GetMessagesByStudentID(ctx, studentID)
}
