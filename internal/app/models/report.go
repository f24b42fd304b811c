package models

import "time"

// ExamResultRow is a flattened result row joined with its exam, used by reports
type ExamResultRow struct {
	ExamID          int64
	SubjectName     string
	ExamDate        time.Time
	ExamType        ExamType
	Score           int
	PromotionStatus PromotionStatus
}

// DoctorResultRow is a result row for an exam owned by a doctor
type DoctorResultRow struct {
	DoctorID        int64
	PromotionStatus PromotionStatus
}

// StudentScoreRow is one student joined with one of their result scores.
// Score is nil for students who have no results yet; the rankings still
// list them with an average of zero.
type StudentScoreRow struct {
	StudentID      int64
	Username       string
	DepartmentName *string
	Score          *int
}
