package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/app/controllers"
	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/middleware"
)

// SetupRouter configures all application routes. Each operation's required
// role set is declared here, next to the route, rather than derived at runtime.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	departmentController *controllers.DepartmentController,
	subjectController *controllers.SubjectController,
	examController *controllers.ExamController,
	questionController *controllers.QuestionController,
	reportController *controllers.ReportController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Privileged account creation
	authProtected := authenticated.Group("/auth")
	{
		authProtected.POST("/logout", authController.Logout)
		authProtected.POST("/admins",
			middleware.RoleRequired(models.RoleSuperAdmin), authController.CreateAdmin)
		authProtected.POST("/doctors",
			middleware.RoleRequired(models.RoleAdmin), authController.CreateDoctor)
	}

	// Doctor directory
	users := authenticated.Group("/users")
	{
		adminOnly := middleware.RoleRequired(models.RoleAdmin)
		users.GET("/doctors", adminOnly, userController.GetAllDoctors)
		users.GET("/doctors/count", adminOnly, userController.CountDoctors)
		users.PATCH("/doctors/:id", adminOnly, userController.UpdateDoctor)
		users.DELETE("/doctors/:id", adminOnly, userController.DeleteDoctor)
		users.GET("/doctors/:id/subjects",
			middleware.RoleRequired(models.RoleAdmin, models.RoleDoctor),
			userController.GetDoctorSubjects)
	}

	// Departments
	departments := authenticated.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/count", departmentController.CountDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.GET("/:id/subjects", departmentController.GetDepartmentSubjects)

		adminOnly := middleware.RoleRequired(models.RoleAdmin)
		departments.POST("", adminOnly, departmentController.CreateDepartment)
		departments.PATCH("/:id", adminOnly, departmentController.UpdateDepartment)
		departments.DELETE("/:id", adminOnly, departmentController.DeleteDepartment)
	}

	// Subject catalog
	subjects := authenticated.Group("/subjects")
	{
		subjects.GET("", subjectController.GetAllSubjects)
		subjects.GET("/student",
			middleware.RoleRequired(models.RoleStudent), subjectController.GetStudentSubjects)
		subjects.GET("/:id", subjectController.GetSubjectByID)

		adminOnly := middleware.RoleRequired(models.RoleAdmin)
		subjects.POST("", adminOnly, subjectController.CreateSubject)
		subjects.PATCH("/:id", adminOnly, subjectController.UpdateSubject)
		subjects.DELETE("/:id", adminOnly, subjectController.DeleteSubject)
	}

	// Exam lifecycle and reports
	exams := authenticated.Group("/exams")
	{
		exams.POST("",
			middleware.RoleRequired(models.RoleDoctor), examController.CreateExam)
		exams.POST("/:id/submit",
			middleware.RoleRequired(models.RoleStudent), examController.SubmitExam)

		exams.GET("/subject/:id",
			middleware.RoleRequired(models.RoleStudent, models.RoleDoctor),
			examController.GetOwnedSubjectExams)
		exams.GET("/subjects/:id/exams", examController.GetSubjectExams)
		exams.GET("/:id/questions", examController.GetExamQuestions)
		exams.GET("/average/:studentId/:year", reportController.GetStudentYearAverage)

		adminOnly := middleware.RoleRequired(models.RoleAdmin)
		exams.GET("/reports/average-scores", adminOnly, reportController.GetExamAverages)
		exams.GET("/reports/promotion-rate", adminOnly, reportController.GetGlobalPromotionRate)
		exams.GET("/reports/promotion-rate/doctors", adminOnly, reportController.GetAllDoctorsPromotionRates)
		exams.GET("/reports/promotion-rate/doctor/:id", adminOnly, reportController.GetDoctorPromotionRate)
		exams.GET("/rankings",
			middleware.RoleRequired(models.RoleAdmin, models.RoleSuperAdmin),
			reportController.GetDepartmentRankings)
	}

	// Question management
	questions := authenticated.Group("/questions")
	questions.Use(middleware.RoleRequired(models.RoleDoctor))
	{
		questions.POST("", questionController.CreateQuestion)
		questions.POST("/upload", questionController.UploadQuestions)
		questions.GET("/template", questionController.DownloadTemplate)
	}

	// Messaging
	messages := authenticated.Group("/messages")
	{
		messages.POST("/send",
			middleware.RoleRequired(models.RoleStudent, models.RoleDoctor),
			messageController.SendMessage)
		messages.GET("/inbox",
			middleware.RoleRequired(models.RoleDoctor), messageController.GetInbox)
		messages.GET("/student/messages",
			middleware.RoleRequired(models.RoleStudent), messageController.GetStudentMessages)
	}
}
