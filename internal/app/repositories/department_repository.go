package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/pkg/apperrors"
	"github.com/rawad/acadex/internal/pkg/dberrors"
)

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// CreateDepartment creates a new department
func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id`,
		department.Name).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDepartmentAlreadyExists
		}
		return 0, fmt.Errorf("error creating department: %w", err)
	}

	return id, nil
}

// GetDepartmentByID retrieves a department by ID
func (r *DepartmentRepository) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	department := &models.Department{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM departments
		WHERE id = $1`,
		id).Scan(&department.ID, &department.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error getting department: %w", err)
	}

	return department, nil
}

// GetAllDepartments retrieves all departments ordered by name
func (r *DepartmentRepository) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM departments
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, department)
	}

	return departments, rows.Err()
}

// UpdateDepartment updates a department's name
func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE departments
		SET name = $1
		WHERE id = $2`,
		department.Name, department.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// DeleteDepartment removes a department
func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM departments WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// DepartmentExistsByName checks if a department with the given name exists
func (r *DepartmentRepository) DepartmentExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking department name: %w", err)
	}

	return exists, nil
}
