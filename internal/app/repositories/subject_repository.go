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

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// CreateSubject creates a new subject
func (r *SubjectRepository) CreateSubject(ctx context.Context, subject *models.Subject) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO subjects (name, academic_year, department_id, doctor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		subject.Name, subject.AcademicYear, subject.DepartmentID, subject.DoctorID).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrSubjectAlreadyExists
		}
		return 0, fmt.Errorf("error creating subject: %w", err)
	}

	return id, nil
}

// GetSubjectByID retrieves a subject by ID
func (r *SubjectRepository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject := &models.Subject{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, academic_year, department_id, doctor_id
		FROM subjects
		WHERE id = $1`,
		id).Scan(&subject.ID, &subject.Name, &subject.AcademicYear, &subject.DepartmentID, &subject.DoctorID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error getting subject: %w", err)
	}

	return subject, nil
}

// GetAllSubjects retrieves all subjects with their department names
func (r *SubjectRepository) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.academic_year, s.department_id, s.doctor_id, d.name
		FROM subjects s
		JOIN departments d ON d.id = s.department_id
		ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	return scanSubjectsWithDepartment(rows)
}

// GetSubjectsByDoctorID retrieves all subjects assigned to a doctor
func (r *SubjectRepository) GetSubjectsByDoctorID(ctx context.Context, doctorID int64) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.academic_year, s.department_id, s.doctor_id, d.name
		FROM subjects s
		JOIN departments d ON d.id = s.department_id
		WHERE s.doctor_id = $1
		ORDER BY s.name`,
		doctorID)
	if err != nil {
		return nil, fmt.Errorf("error listing doctor subjects: %w", err)
	}
	defer rows.Close()

	return scanSubjectsWithDepartment(rows)
}

// GetSubjectsByDepartmentID retrieves all subjects belonging to a department
func (r *SubjectRepository) GetSubjectsByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.academic_year, s.department_id, s.doctor_id, d.name
		FROM subjects s
		JOIN departments d ON d.id = s.department_id
		WHERE s.department_id = $1
		ORDER BY s.name`,
		departmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing department subjects: %w", err)
	}
	defer rows.Close()

	return scanSubjectsWithDepartment(rows)
}

// GetSubjectsByYearAndDepartment retrieves subjects matching a student's academic year and department
func (r *SubjectRepository) GetSubjectsByYearAndDepartment(ctx context.Context, academicYear int, departmentID int64) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.academic_year, s.department_id, s.doctor_id, d.name
		FROM subjects s
		JOIN departments d ON d.id = s.department_id
		WHERE s.academic_year = $1 AND s.department_id = $2
		ORDER BY s.name`,
		academicYear, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student subjects: %w", err)
	}
	defer rows.Close()

	return scanSubjectsWithDepartment(rows)
}

func scanSubjectsWithDepartment(rows pgx.Rows) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{Department: &models.Department{}}
		err := rows.Scan(&subject.ID, &subject.Name, &subject.AcademicYear,
			&subject.DepartmentID, &subject.DoctorID, &subject.Department.Name)
		if err != nil {
			return nil, fmt.Errorf("error scanning subject: %w", err)
		}
		subject.Department.ID = subject.DepartmentID
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// UpdateSubject updates a subject
func (r *SubjectRepository) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE subjects
		SET name = $1, academic_year = $2, department_id = $3, doctor_id = $4
		WHERE id = $5`,
		subject.Name, subject.AcademicYear, subject.DepartmentID, subject.DoctorID, subject.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error updating subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// DeleteSubject removes a subject
func (r *SubjectRepository) DeleteSubject(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM subjects WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
