package services

import (
	"context"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
)

// SubjectService handles the subject catalog
type SubjectService struct {
	subjectRepo    *repositories.SubjectRepository
	departmentRepo *repositories.DepartmentRepository
	userRepo       *repositories.UserRepository
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(
	subjectRepo *repositories.SubjectRepository,
	departmentRepo *repositories.DepartmentRepository,
	userRepo *repositories.UserRepository,
) *SubjectService {
	return &SubjectService{
		subjectRepo:    subjectRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// verifyDoctorRole checks that the referenced user exists and holds the doctor role
func (s *SubjectService) verifyDoctorRole(ctx context.Context, doctorID int64) error {
	user, err := s.userRepo.GetUserByID(ctx, doctorID)
	if err != nil {
		return apperrors.ErrDoctorNotFound
	}
	if user.Role != models.RoleDoctor {
		return apperrors.ErrInvalidDoctorRole
	}
	return nil
}

// CreateSubject creates a subject, optionally assigned to a doctor
func (s *SubjectService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if _, err := s.departmentRepo.GetDepartmentByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	if req.DoctorID != nil {
		if err := s.verifyDoctorRole(ctx, *req.DoctorID); err != nil {
			return nil, err
		}
	}

	subject := &models.Subject{
		Name:         req.Name,
		AcademicYear: req.AcademicYear,
		DepartmentID: req.DepartmentID,
		DoctorID:     req.DoctorID,
	}

	id, err := s.subjectRepo.CreateSubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	subject.ID = id

	return subject, nil
}

// GetAllSubjects lists all subjects
func (s *SubjectService) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAllSubjects(ctx)
}

// GetSubjectByID retrieves a single subject
func (s *SubjectService) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetSubjectByID(ctx, id)
}

// GetStudentSubjects lists the subjects matching the student's academic year and department
func (s *SubjectService) GetStudentSubjects(ctx context.Context, studentID int64) (*dto.StudentSubjectsResponse, error) {
	student, err := s.userRepo.GetUserByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.AcademicYear == nil || student.DepartmentID == nil {
		return nil, apperrors.NewValidationError("student has no academic year or department set")
	}

	subjects, err := s.subjectRepo.GetSubjectsByYearAndDepartment(ctx, *student.AcademicYear, *student.DepartmentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentSubjectsResponse{
		AcademicYear: *student.AcademicYear,
		DepartmentID: *student.DepartmentID,
		Subjects:     subjects,
	}, nil
}

// UpdateSubject updates a subject's fields, including doctor reassignment or removal
func (s *SubjectService) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	if req.RemoveDoctor && req.DoctorID != nil {
		return nil, apperrors.NewValidationError("cannot set doctorId and removeDoctor together")
	}

	subject, err := s.subjectRepo.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.AcademicYear != nil {
		subject.AcademicYear = *req.AcademicYear
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetDepartmentByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		subject.DepartmentID = *req.DepartmentID
	}
	if req.RemoveDoctor {
		subject.DoctorID = nil
	} else if req.DoctorID != nil {
		if err := s.verifyDoctorRole(ctx, *req.DoctorID); err != nil {
			return nil, err
		}
		subject.DoctorID = req.DoctorID
	}

	if err := s.subjectRepo.UpdateSubject(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes a subject
func (s *SubjectService) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.DeleteSubject(ctx, id)
}
