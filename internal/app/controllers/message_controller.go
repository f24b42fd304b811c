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

// MessageController handles the student/doctor messaging endpoints
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// SendMessage stores a message between a student and a doctor
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.ErrorResponse "Endpoint is not a student/doctor pair"
// @Failure 404 {object} dto.ErrorResponse "Student or doctor not found"
// @Router /messages/send [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	message, err := c.messageService.SendMessage(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      messageResponse(message),
		Timestamp: time.Now(),
	})
}

// GetInbox lists the messages sent to the requesting doctor
// @Summary Doctor inbox
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse}
// @Router /messages/inbox [get]
func (c *MessageController) GetInbox(ctx *gin.Context) {
	doctorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	messages, err := c.messageService.GetDoctorInbox(ctx, doctorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      messageResponses(messages),
		Timestamp: time.Now(),
	})
}

// GetStudentMessages lists the messages the requesting student has sent
// @Summary Student's sent messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse}
// @Router /messages/student/messages [get]
func (c *MessageController) GetStudentMessages(ctx *gin.Context) {
	studentID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	messages, err := c.messageService.GetStudentMessages(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      messageResponses(messages),
		Timestamp: time.Now(),
	})
}

func messageResponse(message *models.Message) dto.MessageResponse {
	response := dto.MessageResponse{
		ID:          message.ID,
		StudentID:   message.StudentID,
		DoctorID:    message.DoctorID,
		MessageText: message.MessageText,
		SentAt:      message.SentAt,
	}
	if message.Student != nil {
		response.Student = message.Student.Username
	}
	if message.Doctor != nil {
		response.Doctor = message.Doctor.Username
	}
	return response
}

func messageResponses(messages []*models.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, messageResponse(message))
	}
	return responses
}
