package services

import (
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	DepartmentService *DepartmentService
	SubjectService    *SubjectService
	ExamService       *ExamService
	QuestionService   *QuestionService
	ReportService     *ReportService
	MessageService    *MessageService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.DepartmentRepository, jwtService),
		UserService:       NewUserService(repos.UserRepository, repos.SubjectRepository),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, repos.SubjectRepository),
		SubjectService:    NewSubjectService(repos.SubjectRepository, repos.DepartmentRepository, repos.UserRepository),
		ExamService:       NewExamService(repos.ExamRepository, repos.SubjectRepository, repos.UserRepository),
		QuestionService:   NewQuestionService(repos.ExamRepository, repos.SubjectRepository),
		ReportService:     NewReportService(repos.ReportRepository, repos.UserRepository, repos.SubjectRepository),
		MessageService:    NewMessageService(repos.MessageRepository, repos.UserRepository),
	}
}
