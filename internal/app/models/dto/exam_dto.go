package dto

import (
	"time"

	"github.com/rawad/acadex/internal/app/models"
)

// QuestionInput is a single question supplied at exam creation
type QuestionInput struct {
	QuestionText  string `json:"questionText" binding:"required"`
	Option1       string `json:"option1" binding:"required"`
	Option2       string `json:"option2" binding:"required"`
	Option3       string `json:"option3" binding:"required"`
	Option4       string `json:"option4" binding:"required"`
	CorrectOption int    `json:"correctOption" binding:"required,min=1,max=4"`
}

// CreateExamRequest is the payload for exam creation with its question set
type CreateExamRequest struct {
	SubjectID int64           `json:"subjectId" binding:"required,min=1"`
	ExamDate  string          `json:"examDate" binding:"required" example:"2025-06-14"` // YYYY-MM-DD
	ExamType  models.ExamType `json:"examType" binding:"required,oneof=theoretical practical"`
	Questions []QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// CreateExamResponse reports the created exam and how many questions were attached
type CreateExamResponse struct {
	Exam           *models.Exam `json:"exam"`
	QuestionsCount int          `json:"questionsCount"`
}

// AnswerInput is a single submitted answer
type AnswerInput struct {
	QuestionID     int64 `json:"questionId" binding:"required,min=1"`
	SelectedOption int   `json:"selectedOption" binding:"required,min=1,max=4"`
}

// SubmitExamRequest is the payload for a student's exam submission
type SubmitExamRequest struct {
	Answers []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}

// SubmitExamResponse is the graded outcome returned to the student
type SubmitExamResponse struct {
	ExamID          int64                  `json:"examId"`
	StudentID       int64                  `json:"studentId"`
	Score           int                    `json:"score"`
	TotalQuestions  int                    `json:"totalQuestions"`
	PromotionStatus models.PromotionStatus `json:"promotionStatus"`
	IsTraining      bool                   `json:"isTraining"` // kept for client compatibility, always false
}

// ExamSummary is the student-facing view of an exam (no questions)
type ExamSummary struct {
	ExamID   int64           `json:"examId"`
	ExamDate time.Time       `json:"examDate"`
	ExamType models.ExamType `json:"examType"`
}

// SubjectHeader is the subject identification attached to exam listings
type SubjectHeader struct {
	SubjectID    int64  `json:"subjectId"`
	Name         string `json:"name"`
	AcademicYear int    `json:"academicYear"`
}

// SubjectExamsResponse lists a subject's exams for the student view
type SubjectExamsResponse struct {
	Subject SubjectHeader `json:"subject"`
	Exams   []ExamSummary `json:"exams"`
}

// DoctorExamDetail is the owner's view of an exam, full question set included
type DoctorExamDetail struct {
	ExamID    int64              `json:"examId"`
	ExamDate  time.Time          `json:"examDate"`
	ExamType  models.ExamType    `json:"examType"`
	Questions []*models.Question `json:"questions"`
}

// DoctorSubjectExamsResponse lists a subject's exams with their questions
// and correct options for the assigned doctor
type DoctorSubjectExamsResponse struct {
	Subject SubjectHeader      `json:"subject"`
	Exams   []DoctorExamDetail `json:"exams"`
}

// ExamQuestionView is a question with the correct option hidden
type ExamQuestionView struct {
	QuestionID   int64  `json:"questionId"`
	QuestionText string `json:"questionText"`
	Option1      string `json:"option1"`
	Option2      string `json:"option2"`
	Option3      string `json:"option3"`
	Option4      string `json:"option4"`
}

// DoctorHeader identifies the exam's creator
type DoctorHeader struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ExamQuestionsResponse carries an exam's questions for takers, answers hidden
type ExamQuestionsResponse struct {
	ExamID    int64              `json:"examId"`
	ExamDate  time.Time          `json:"examDate"`
	ExamType  models.ExamType    `json:"examType"`
	Subject   SubjectHeader      `json:"subject"`
	Doctor    *DoctorHeader      `json:"doctor,omitempty"`
	Questions []ExamQuestionView `json:"questions"`
}

// ExamAverage is the average score of one exam over all its results
type ExamAverage struct {
	ExamID       int64   `json:"examId"`
	AverageScore float64 `json:"averageScore"`
}

// PromotionRateResponse is the global promotion rate over all results
type PromotionRateResponse struct {
	TotalStudents    int     `json:"totalStudents"`
	PromotedStudents int     `json:"promotedStudents"`
	PromotionRate    float64 `json:"promotionRate"`
}

// DoctorPromotion is one doctor's promotion rate with the subjects they teach.
// Message distinguishes the empty cases (no subjects / no exams / no results).
type DoctorPromotion struct {
	DoctorID      int64    `json:"doctorId"`
	DoctorName    string   `json:"doctorName"`
	Subjects      []string `json:"subjects"`
	PromotionRate float64  `json:"promotionRate"`
	Message       string   `json:"message,omitempty"`
}

// AllDoctorsPromotionResponse fans the per-doctor computation out over every
// doctor. OverallPromotionRate is the mean of the individual rates, not a
// pooled rate.
type AllDoctorsPromotionResponse struct {
	DoctorPromotions     []DoctorPromotion `json:"doctorPromotions"`
	OverallPromotionRate float64           `json:"overallPromotionRate"`
}

// StudentYearAverageResponse is a student's average over one academic year.
// Message is set (and Average is 0) when no results match.
type StudentYearAverageResponse struct {
	StudentID    int64   `json:"studentId,omitempty"`
	AcademicYear int     `json:"academicYear,omitempty"`
	Average      float64 `json:"average"`
	Message      string  `json:"message,omitempty"`
}

// RankedStudent is one student's standing inside a department ranking
type RankedStudent struct {
	StudentID    int64   `json:"studentId"`
	Username     string  `json:"username"`
	Average      float64 `json:"average"`
	ResultsCount int     `json:"resultsCount"`
}

// DepartmentRanking is a department's students ordered by average, descending
type DepartmentRanking struct {
	DepartmentName string          `json:"departmentName"`
	Students       []RankedStudent `json:"students"`
}

// RankingsResponse groups student rankings by department
type RankingsResponse struct {
	Rankings []DepartmentRanking `json:"rankings"`
}
