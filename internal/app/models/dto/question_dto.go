package dto

import (
	"github.com/rawad/acadex/internal/app/models"
)

// CreateQuestionRequest is the payload for adding one question to an existing exam
type CreateQuestionRequest struct {
	QuestionText  string `json:"questionText" binding:"required"`
	Option1       string `json:"option1" binding:"required"`
	Option2       string `json:"option2" binding:"required"`
	Option3       string `json:"option3" binding:"required"`
	Option4       string `json:"option4" binding:"required"`
	CorrectOption int    `json:"correctOption" binding:"required,min=1,max=4"`
	SubjectID     int64  `json:"subjectId" binding:"required,min=1"`
	ExamID        int64  `json:"examId" binding:"required,min=1"`
}

// ImportQuestionsRequest carries the exam metadata accompanying a bulk upload.
// The questions themselves come from the uploaded spreadsheet.
type ImportQuestionsRequest struct {
	SubjectID int64           `form:"subjectId" binding:"required,min=1"`
	ExamDate  string          `form:"examDate" binding:"required"` // YYYY-MM-DD
	ExamType  models.ExamType `form:"examType" binding:"required,oneof=theoretical practical"`
}

// ImportQuestionsResponse reports the exam created from a bulk import
type ImportQuestionsResponse struct {
	Exam           *models.Exam `json:"exam"`
	QuestionsCount int          `json:"questionsCount"`
	SkippedRows    int          `json:"skippedRows"`
}
