package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/services"
	"github.com/rawad/acadex/internal/middleware"
)

// UserController handles the doctor directory endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllDoctors lists all doctor accounts
// @Summary List doctors
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse}
// @Router /users/doctors [get]
func (c *UserController) GetAllDoctors(ctx *gin.Context) {
	doctors, err := c.userService.GetAllDoctors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(doctors))
	for _, doctor := range doctors {
		responses = append(responses, userResponse(doctor))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// CountDoctors returns the number of doctor accounts
// @Summary Count doctors
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse}
// @Router /users/doctors/count [get]
func (c *UserController) CountDoctors(ctx *gin.Context) {
	count, err := c.userService.CountDoctors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CountResponse{Count: count},
		Timestamp: time.Now(),
	})
}

// UpdateDoctor updates a doctor's username and/or phone
// @Summary Update a doctor
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 404 {object} dto.ErrorResponse "Doctor not found"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Router /users/doctors/{id} [patch]
func (c *UserController) UpdateDoctor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	doctor, err := c.userService.UpdateDoctor(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      userResponse(doctor),
		Timestamp: time.Now(),
	})
}

// DeleteDoctor removes a doctor account
// @Summary Delete a doctor
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doctor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Doctor not found"
// @Router /users/doctors/{id} [delete]
func (c *UserController) DeleteDoctor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteDoctor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Doctor deleted successfully"},
		Timestamp: time.Now(),
	})
}

// GetDoctorSubjects lists the subjects a doctor teaches
// @Summary List a doctor's subjects
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doctor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject}
// @Failure 404 {object} dto.ErrorResponse "Doctor not found"
// @Router /users/doctors/{id}/subjects [get]
func (c *UserController) GetDoctorSubjects(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subjects, err := c.userService.GetDoctorSubjects(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if subjects == nil {
		subjects = []*models.Subject{}
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}
