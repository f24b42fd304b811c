package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/services"
	"github.com/rawad/acadex/internal/middleware"
)

// ExamController handles exam creation, submission and exam views
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// CreateExam handles exam creation with its question set
// @Summary Create an exam
// @Description Creates an exam with its questions in one transaction. The requesting doctor must own the subject.
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamRequest true "Exam and questions"
// @Success 201 {object} dto.APIResponse{data=dto.CreateExamResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Subject not assigned to the requester"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already exists for this subject and date"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	doctorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	response, err := c.examService.CreateExam(ctx, doctorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// SubmitExam handles a student's exam submission
// @Summary Submit an exam
// @Description Grades the submission and persists answers and result atomically. One submission per student per exam.
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param request body dto.SubmitExamRequest true "Submitted answers"
// @Success 200 {object} dto.APIResponse{data=dto.SubmitExamResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid or duplicate question IDs"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /exams/{id}/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	studentID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	examID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	response, err := c.examService.SubmitExam(ctx, studentID, examID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetOwnedSubjectExams lists exams for a subject. Doctors only see subjects
// assigned to them and get each exam's full question set, correct options
// included; students get summaries without questions.
// @Summary List exams for a subject
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.DoctorSubjectExamsResponse}
// @Failure 403 {object} dto.ErrorResponse "Subject not assigned to the requester"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /exams/subject/{id} [get]
func (c *ExamController) GetOwnedSubjectExams(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, _ := middleware.GetUserRole(ctx)
	var (
		response any
		err      error
	)
	if role == models.RoleDoctor {
		doctorID, _ := middleware.GetUserID(ctx)
		response, err = c.examService.GetSubjectExamsForDoctor(ctx, subjectID, doctorID)
	} else {
		response, err = c.examService.GetSubjectExams(ctx, subjectID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetSubjectExams lists a subject's exams for any authenticated user
// @Summary List a subject's exams (student view)
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectExamsResponse}
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /exams/subjects/{id}/exams [get]
func (c *ExamController) GetSubjectExams(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.examService.GetSubjectExams(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetExamQuestions returns an exam's questions with the answers hidden
// @Summary Get exam questions
// @Description Returns the exam's questions for takers; correct options are never included
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=dto.ExamQuestionsResponse}
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id}/questions [get]
func (c *ExamController) GetExamQuestions(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.examService.GetExamQuestions(ctx, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// parseYearParam parses the academic year path parameter
func parseYearParam(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year parameter")
		errorDetail = errorDetail.WithDetails("year must be a number between 1 and 5")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return year, true
}
