package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rawad/acadex/internal/app/models"
)

// MessageRepository handles message database operations
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// CreateMessage stores a message from a student to a doctor
func (r *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO messages (student_id, doctor_id, message_text)
		VALUES ($1, $2, $3)
		RETURNING id, sent_at`,
		message.StudentID, message.DoctorID, message.MessageText).
		Scan(&message.ID, &message.SentAt)

	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetMessagesByDoctorID retrieves all messages sent to a doctor, newest first
func (r *MessageRepository) GetMessagesByDoctorID(ctx context.Context, doctorID int64) ([]*models.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.student_id, m.doctor_id, m.message_text, m.sent_at, u.username
		FROM messages m
		JOIN users u ON u.id = m.student_id
		WHERE m.doctor_id = $1
		ORDER BY m.sent_at DESC`,
		doctorID)
	if err != nil {
		return nil, fmt.Errorf("error listing doctor messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message := &models.Message{Student: &models.User{}}
		err := rows.Scan(&message.ID, &message.StudentID, &message.DoctorID,
			&message.MessageText, &message.SentAt, &message.Student.Username)
		if err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		message.Student.ID = message.StudentID
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

// GetMessagesByStudentID retrieves all messages sent by a student, newest first
func (r *MessageRepository) GetMessagesByStudentID(ctx context.Context, studentID int64) ([]*models.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.student_id, m.doctor_id, m.message_text, m.sent_at, u.username
		FROM messages m
		JOIN users u ON u.id = m.doctor_id
		WHERE m.student_id = $1
		ORDER BY m.sent_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message := &models.Message{Doctor: &models.User{}}
		err := rows.Scan(&message.ID, &message.StudentID, &message.DoctorID,
			&message.MessageText, &message.SentAt, &message.Doctor.Username)
		if err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		message.Doctor.ID = message.DoctorID
		messages = append(messages, message)
	}

	return messages, rows.Err()
}
