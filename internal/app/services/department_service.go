package services

import (
	"context"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
)

// DepartmentService handles department management
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
	subjectRepo    *repositories.SubjectRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, subjectRepo *repositories.SubjectRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		subjectRepo:    subjectRepo,
	}
}

// CreateDepartment creates a new department with a unique name
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	exists, err := s.departmentRepo.DepartmentExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department := &models.Department{Name: req.Name}
	id, err := s.departmentRepo.CreateDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	department.ID = id

	return department, nil
}

// GetAllDepartments lists all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAllDepartments(ctx)
}

// GetDepartmentByID retrieves a single department
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetDepartmentByID(ctx, id)
}

// CountDepartments returns the number of departments
func (s *DepartmentService) CountDepartments(ctx context.Context) (int64, error) {
	departments, err := s.departmentRepo.GetAllDepartments(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(departments)), nil
}

// GetDepartmentSubjects lists a department's subjects
func (s *DepartmentService) GetDepartmentSubjects(ctx context.Context, departmentID int64) ([]*models.Subject, error) {
	if _, err := s.departmentRepo.GetDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.subjectRepo.GetSubjectsByDepartmentID(ctx, departmentID)
}

// UpdateDepartment renames a department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = req.Name
	if err := s.departmentRepo.UpdateDepartment(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment removes a department
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.DeleteDepartment(ctx, id)
}
