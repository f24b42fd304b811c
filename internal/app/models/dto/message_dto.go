package dto

import (
	"time"
)

// SendMessageRequest is the payload for sending a student/doctor note
type SendMessageRequest struct {
	StudentID   int64  `json:"studentId" binding:"required,min=1"`
	DoctorID    int64  `json:"doctorId" binding:"required,min=1"`
	MessageText string `json:"messageText" binding:"required,min=1,max=2000"`
}

// MessageResponse is one delivered message with the counterpart's name resolved
type MessageResponse struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	DoctorID    int64     `json:"doctorId"`
	MessageText string    `json:"messageText"`
	SentAt      time.Time `json:"sentAt"`
	Student     string    `json:"student,omitempty"`
	Doctor      string    `json:"doctor,omitempty"`
}
