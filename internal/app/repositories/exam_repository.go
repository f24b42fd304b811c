package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/db"
	"github.com/rawad/acadex/internal/pkg/apperrors"
	"github.com/rawad/acadex/internal/pkg/dberrors"
)

// ExamRepository handles exam, question, answer and result database operations
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
	}
}

// CreateExamWithQuestions creates an exam and its questions atomically
func (r *ExamRepository) CreateExamWithQuestions(ctx context.Context, exam *models.Exam, questions []*models.Question) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO exams (subject_id, doctor_id, exam_date, exam_type)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			exam.SubjectID, exam.DoctorID, exam.ExamDate, exam.ExamType).Scan(&exam.ID)
		if err != nil {
			return err
		}

		for _, q := range questions {
			q.ExamID = exam.ID
			q.SubjectID = exam.SubjectID
			err := tx.QueryRow(ctx, `
				INSERT INTO questions (question_text, option1, option2, option3, option4, correct_option, subject_id, exam_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id`,
				q.QuestionText, q.Option1, q.Option2, q.Option3, q.Option4,
				q.CorrectOption, q.SubjectID, q.ExamID).Scan(&q.ID)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "exams_subject_date_unique") {
			return apperrors.ErrExamAlreadyExists
		}
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// ExamExistsBySubjectAndDate checks if the subject already has an exam on the given date
func (r *ExamRepository) ExamExistsBySubjectAndDate(ctx context.Context, subjectID int64, examDate time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM exams WHERE subject_id = $1 AND exam_date = $2)`,
		subjectID, examDate).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking exam date: %w", err)
	}

	return exists, nil
}

// GetExamByID retrieves an exam by ID
func (r *ExamRepository) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	exam := &models.Exam{}
	err := r.db.QueryRow(ctx, `
		SELECT id, subject_id, doctor_id, exam_date, exam_type
		FROM exams
		WHERE id = $1`,
		id).Scan(&exam.ID, &exam.SubjectID, &exam.DoctorID, &exam.ExamDate, &exam.ExamType)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error getting exam: %w", err)
	}

	return exam, nil
}

// GetExamsBySubjectID retrieves all exams for a subject with their question
// counts, newest first
func (r *ExamRepository) GetExamsBySubjectID(ctx context.Context, subjectID int64) ([]*models.Exam, map[int64]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.subject_id, e.doctor_id, e.exam_date, e.exam_type, COUNT(q.id)
		FROM exams e
		LEFT JOIN questions q ON q.exam_id = e.id
		WHERE e.subject_id = $1
		GROUP BY e.id
		ORDER BY e.exam_date DESC`,
		subjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	counts := make(map[int64]int)
	for rows.Next() {
		exam := &models.Exam{}
		var questionCount int
		err := rows.Scan(&exam.ID, &exam.SubjectID, &exam.DoctorID, &exam.ExamDate, &exam.ExamType, &questionCount)
		if err != nil {
			return nil, nil, fmt.Errorf("error scanning exam: %w", err)
		}
		counts[exam.ID] = questionCount
		exams = append(exams, exam)
	}

	return exams, counts, rows.Err()
}

// GetQuestionsByExamID retrieves all questions of an exam, including correct options
func (r *ExamRepository) GetQuestionsByExamID(ctx context.Context, examID int64) ([]*models.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, question_text, option1, option2, option3, option4, correct_option, subject_id, exam_id
		FROM questions
		WHERE exam_id = $1
		ORDER BY id`,
		examID)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		q := &models.Question{}
		err := rows.Scan(&q.ID, &q.QuestionText, &q.Option1, &q.Option2, &q.Option3, &q.Option4,
			&q.CorrectOption, &q.SubjectID, &q.ExamID)
		if err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// CreateQuestion adds a single question to an existing exam
func (r *ExamRepository) CreateQuestion(ctx context.Context, question *models.Question) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO questions (question_text, option1, option2, option3, option4, correct_option, subject_id, exam_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		question.QuestionText, question.Option1, question.Option2, question.Option3, question.Option4,
		question.CorrectOption, question.SubjectID, question.ExamID).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating question: %w", err)
	}

	return id, nil
}

// HasResult checks if a student already has a result for an exam
func (r *ExamRepository) HasResult(ctx context.Context, examID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM results WHERE exam_id = $1 AND student_id = $2)`,
		examID, studentID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking result: %w", err)
	}

	return exists, nil
}

// SaveSubmission persists a student's answers and their graded result atomically
func (r *ExamRepository) SaveSubmission(ctx context.Context, answers []*models.Answer, result *models.Result) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, a := range answers {
			err := tx.QueryRow(ctx, `
				INSERT INTO exam_answers (exam_id, question_id, student_id, selected_option)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				a.ExamID, a.QuestionID, a.StudentID, a.SelectedOption).Scan(&a.ID)
			if err != nil {
				return err
			}
		}

		return tx.QueryRow(ctx, `
			INSERT INTO results (exam_id, student_id, score, promotion_status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			result.ExamID, result.StudentID, result.Score, result.PromotionStatus).
			Scan(&result.ID, &result.CreatedAt)
	})

	if err != nil {
		// A concurrent submission loses the race on either unique constraint
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadySubmitted
		}
		return fmt.Errorf("error saving submission: %w", err)
	}

	return nil
}
