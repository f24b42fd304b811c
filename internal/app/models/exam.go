package models

import (
	"time"
)

// ExamType is the kind of examination
type ExamType string

const (
	ExamTheoretical ExamType = "theoretical"
	ExamPractical   ExamType = "practical"
)

// Valid reports whether the exam type is one of the known values.
func (t ExamType) Valid() bool {
	return t == ExamTheoretical || t == ExamPractical
}

// PromotionStatus is the pass/fail determination persisted with a result
type PromotionStatus string

const (
	Promoted    PromotionStatus = "promoted"
	NotPromoted PromotionStatus = "not_promoted"
)

// Exam defines the exam model based on the 'exams' table.
// At most one exam exists per (subject, exam_date) pair.
type Exam struct {
	ID        int64       `json:"examId" db:"id"`
	SubjectID int64       `json:"subjectId" db:"subject_id"`
	DoctorID  int64       `json:"doctorId" db:"doctor_id"`
	ExamDate  time.Time   `json:"examDate" db:"exam_date"`
	ExamType  ExamType    `json:"examType" db:"exam_type"`
	Subject   *Subject    `json:"subject,omitempty"`   // Relation, no db tag
	Questions []*Question `json:"questions,omitempty"` // Relation, no db tag
}

// Question defines the question model based on the 'questions' table.
// Questions are created only as part of exam creation or bulk import.
type Question struct {
	ID            int64  `json:"questionId" db:"id"`
	QuestionText  string `json:"questionText" db:"question_text"`
	Option1       string `json:"option1" db:"option1"`
	Option2       string `json:"option2" db:"option2"`
	Option3       string `json:"option3" db:"option3"`
	Option4       string `json:"option4" db:"option4"`
	CorrectOption int    `json:"correctOption,omitempty" db:"correct_option"` // 1-4
	SubjectID     int64  `json:"subjectId" db:"subject_id"`
	ExamID        int64  `json:"examId" db:"exam_id"`
}

// Answer defines a single stored answer based on the 'exam_answers' table.
// Append-only; one row per (exam, question, student).
type Answer struct {
	ID             int64 `json:"id" db:"id"`
	ExamID         int64 `json:"examId" db:"exam_id"`
	QuestionID     int64 `json:"questionId" db:"question_id"`
	StudentID      int64 `json:"studentId" db:"student_id"`
	SelectedOption int   `json:"selectedOption" db:"selected_option"` // 1-4
}

// Result defines the graded outcome based on the 'results' table.
// At most one result exists per (exam, student); results are immutable once written.
type Result struct {
	ID              int64           `json:"id" db:"id"`
	ExamID          int64           `json:"examId" db:"exam_id"`
	StudentID       int64           `json:"studentId" db:"student_id"`
	Score           int             `json:"score" db:"score"`
	PromotionStatus PromotionStatus `json:"promotionStatus" db:"promotion_status"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}
