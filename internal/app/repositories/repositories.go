package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	DepartmentRepository *DepartmentRepository
	SubjectRepository    *SubjectRepository
	ExamRepository       *ExamRepository
	ReportRepository     *ReportRepository
	MessageRepository    *MessageRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		ExamRepository:       NewExamRepository(db),
		ReportRepository:     NewReportRepository(db),
		MessageRepository:    NewMessageRepository(db),
	}
}
