package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rawad/acadex/internal/app/models"
)

// ReportRepository provides the flattened result rows the report aggregations run on
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// GetExamResultRows retrieves every result joined with its exam and subject
func (r *ReportRepository) GetExamResultRows(ctx context.Context) ([]*models.ExamResultRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, s.name, e.exam_date, e.exam_type, res.score, res.promotion_status
		FROM results res
		JOIN exams e ON e.id = res.exam_id
		JOIN subjects s ON s.id = e.subject_id
		ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("error loading result rows: %w", err)
	}
	defer rows.Close()

	var results []*models.ExamResultRow
	for rows.Next() {
		row := &models.ExamResultRow{}
		err := rows.Scan(&row.ExamID, &row.SubjectName, &row.ExamDate, &row.ExamType, &row.Score, &row.PromotionStatus)
		if err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// CountExamsByDoctorID counts exams created by a doctor on subjects they are
// still assigned to. A reassigned subject's exams no longer count.
func (r *ReportRepository) CountExamsByDoctorID(ctx context.Context, doctorID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM exams
		WHERE doctor_id = $1
		  AND subject_id IN (SELECT id FROM subjects WHERE doctor_id = $1)`,
		doctorID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting doctor exams: %w", err)
	}

	return count, nil
}

// GetResultRowsByDoctorID retrieves result rows for the doctor's exams on
// subjects they are still assigned to
func (r *ReportRepository) GetResultRowsByDoctorID(ctx context.Context, doctorID int64) ([]*models.DoctorResultRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.doctor_id, res.promotion_status
		FROM results res
		JOIN exams e ON e.id = res.exam_id
		WHERE e.doctor_id = $1
		  AND e.subject_id IN (SELECT id FROM subjects WHERE doctor_id = $1)`,
		doctorID)
	if err != nil {
		return nil, fmt.Errorf("error loading doctor result rows: %w", err)
	}
	defer rows.Close()

	var results []*models.DoctorResultRow
	for rows.Next() {
		row := &models.DoctorResultRow{}
		if err := rows.Scan(&row.DoctorID, &row.PromotionStatus); err != nil {
			return nil, fmt.Errorf("error scanning doctor result row: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// GetStudentScoresForYear retrieves a student's scores on exams whose subject matches the given academic year
func (r *ReportRepository) GetStudentScoresForYear(ctx context.Context, studentID int64, academicYear int) ([]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT res.score
		FROM results res
		JOIN exams e ON e.id = res.exam_id
		JOIN subjects s ON s.id = e.subject_id
		WHERE res.student_id = $1 AND s.academic_year = $2`,
		studentID, academicYear)
	if err != nil {
		return nil, fmt.Errorf("error loading student scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("error scanning score: %w", err)
		}
		scores = append(scores, score)
	}

	return scores, rows.Err()
}

// GetStudentScoreRows retrieves every student with their result scores.
// Students without results still produce one row, with a NULL score, so the
// rankings include them.
func (r *ReportRepository) GetStudentScoreRows(ctx context.Context) ([]*models.StudentScoreRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.username, d.name, res.score
		FROM users u
		LEFT JOIN results res ON res.student_id = u.id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.role = 'student'
		ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("error loading student score rows: %w", err)
	}
	defer rows.Close()

	var results []*models.StudentScoreRow
	for rows.Next() {
		row := &models.StudentScoreRow{}
		if err := rows.Scan(&row.StudentID, &row.Username, &row.DepartmentName, &row.Score); err != nil {
			return nil, fmt.Errorf("error scanning student score row: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
