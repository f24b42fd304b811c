package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/services"
	"github.com/rawad/acadex/internal/middleware"
)

// QuestionController handles question creation and bulk import
type QuestionController struct {
	questionService *services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService *services.QuestionService) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// CreateQuestion adds a single question to an existing exam
// @Summary Add a question to an exam
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question information"
// @Success 201 {object} dto.APIResponse{data=models.Question}
// @Failure 400 {object} dto.ErrorResponse "Exam does not belong to the subject"
// @Failure 403 {object} dto.ErrorResponse "Subject not assigned to the requester"
// @Failure 404 {object} dto.ErrorResponse "Subject or exam not found"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	doctorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	question, err := c.questionService.CreateQuestion(ctx, doctorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      question,
		Timestamp: time.Now(),
	})
}

// UploadQuestions creates an exam from an uploaded spreadsheet
// @Summary Bulk import questions
// @Description Creates an exam from an xlsx upload. The first row is a header; malformed rows are dropped.
// @Tags questions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param subjectId formData int true "Subject ID"
// @Param examDate formData string true "Exam date (YYYY-MM-DD)"
// @Param examType formData string true "Exam type (theoretical|practical)"
// @Param file formData file true "Question spreadsheet"
// @Success 201 {object} dto.APIResponse{data=dto.ImportQuestionsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid file or no valid rows"
// @Failure 403 {object} dto.ErrorResponse "Subject not assigned to the requester"
// @Failure 409 {object} dto.ErrorResponse "Exam already exists for this subject and date"
// @Router /questions/upload [post]
func (c *QuestionController) UploadQuestions(ctx *gin.Context) {
	doctorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ImportQuestionsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file upload")
		errorDetail = errorDetail.WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	response, err := c.questionService.ImportQuestions(ctx, doctorID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// DownloadTemplate serves the xlsx template for bulk question import
// @Summary Download the question import template
// @Tags questions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Template spreadsheet"
// @Router /questions/template [get]
func (c *QuestionController) DownloadTemplate(ctx *gin.Context) {
	content, err := c.questionService.BuildTemplate()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="questions_template.xlsx"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
