package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/services"
	"github.com/rawad/acadex/internal/middleware"
)

// ReportController handles the read-side aggregation endpoints
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetExamAverages returns the mean score per exam
// @Summary Average score per exam
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ExamAverage}
// @Router /exams/reports/average-scores [get]
func (c *ReportController) GetExamAverages(ctx *gin.Context) {
	averages, err := c.reportService.GetExamAverages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if averages == nil {
		averages = []dto.ExamAverage{}
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      averages,
		Timestamp: time.Now(),
	})
}

// GetGlobalPromotionRate returns the promotion rate over all results
// @Summary Global promotion rate
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PromotionRateResponse}
// @Router /exams/reports/promotion-rate [get]
func (c *ReportController) GetGlobalPromotionRate(ctx *gin.Context) {
	response, err := c.reportService.GetGlobalPromotionRate(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetDoctorPromotionRate returns one doctor's promotion rate
// @Summary Per-doctor promotion rate
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doctor ID"
// @Success 200 {object} dto.APIResponse{data=dto.DoctorPromotion}
// @Failure 404 {object} dto.ErrorResponse "Doctor not found"
// @Router /exams/reports/promotion-rate/doctor/{id} [get]
func (c *ReportController) GetDoctorPromotionRate(ctx *gin.Context) {
	doctorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.reportService.GetDoctorPromotionRate(ctx, doctorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetAllDoctorsPromotionRates returns every doctor's promotion rate
// @Summary All-doctors promotion summary
// @Description Per-doctor rates plus the mean of the individual rates
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AllDoctorsPromotionResponse}
// @Router /exams/reports/promotion-rate/doctors [get]
func (c *ReportController) GetAllDoctorsPromotionRates(ctx *gin.Context) {
	response, err := c.reportService.GetAllDoctorsPromotionRates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetStudentYearAverage returns a student's average over one academic year
// @Summary Student average by academic year
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param year path int true "Academic year (1-5)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentYearAverageResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /exams/average/{studentId}/{year} [get]
func (c *ReportController) GetStudentYearAverage(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}
	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	response, err := c.reportService.GetStudentYearAverage(ctx, studentID, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// GetDepartmentRankings returns students ranked by average within each department
// @Summary Department rankings
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RankingsResponse}
// @Router /exams/rankings [get]
func (c *ReportController) GetDepartmentRankings(ctx *gin.Context) {
	response, err := c.reportService.GetDepartmentRankings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}
