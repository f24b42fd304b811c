package models

import (
	"time"
)

// Message defines a store-and-forward note between a student and a doctor
// based on the 'messages' table.
type Message struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	DoctorID    int64     `json:"doctorId" db:"doctor_id"`
	MessageText string    `json:"messageText" db:"message_text"`
	SentAt      time.Time `json:"sentAt" db:"sent_at"`
	Student     *User     `json:"student,omitempty"` // Relation, no db tag
	Doctor      *User     `json:"doctor,omitempty"`  // Relation, no db tag
}
