package services

import (
	"context"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
)

// Empty-case messages for the per-doctor promotion report. Each empty stage
// is distinguished for the caller.
const (
	msgDoctorNoSubjects = "No subjects found for this doctor"
	msgDoctorNoExams    = "No exams found for this doctor"
	msgDoctorNoResults  = "No results found for this doctor"
	msgStudentNoResults = "No results found for this student in the given academic year"
)

// ReportService computes the read-side aggregations over persisted results
type ReportService struct {
	reportRepo  *repositories.ReportRepository
	userRepo    *repositories.UserRepository
	subjectRepo *repositories.SubjectRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo *repositories.ReportRepository,
	userRepo *repositories.UserRepository,
	subjectRepo *repositories.SubjectRepository,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		userRepo:    userRepo,
		subjectRepo: subjectRepo,
	}
}

// GetExamAverages computes the mean score of every exam that has results
func (s *ReportService) GetExamAverages(ctx context.Context) ([]dto.ExamAverage, error) {
	rows, err := s.reportRepo.GetExamResultRows(ctx)
	if err != nil {
		return nil, err
	}
	return computeExamAverages(rows), nil
}

// GetGlobalPromotionRate computes promoted/total over all results, 0 when empty
func (s *ReportService) GetGlobalPromotionRate(ctx context.Context) (*dto.PromotionRateResponse, error) {
	rows, err := s.reportRepo.GetExamResultRows(ctx)
	if err != nil {
		return nil, err
	}

	promoted := 0
	for _, row := range rows {
		if row.PromotionStatus == models.Promoted {
			promoted++
		}
	}

	return &dto.PromotionRateResponse{
		TotalStudents:    len(rows),
		PromotedStudents: promoted,
		PromotionRate:    promotionRate(promoted, len(rows)),
	}, nil
}

// GetDoctorPromotionRate computes one doctor's promotion rate over the results
// of all exams they created. Each empty stage (no subjects, no exams, no
// results) yields rate 0 with its own message.
func (s *ReportService) GetDoctorPromotionRate(ctx context.Context, doctorID int64) (*dto.DoctorPromotion, error) {
	doctor, err := s.userRepo.GetUserByID(ctx, doctorID)
	if err != nil || doctor.Role != models.RoleDoctor {
		return nil, apperrors.ErrDoctorNotFound
	}
	return s.doctorPromotion(ctx, doctor)
}

func (s *ReportService) doctorPromotion(ctx context.Context, doctor *models.User) (*dto.DoctorPromotion, error) {
	promotion := &dto.DoctorPromotion{
		DoctorID:   doctor.ID,
		DoctorName: doctor.Username,
		Subjects:   []string{},
	}

	subjects, err := s.subjectRepo.GetSubjectsByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		promotion.Message = msgDoctorNoSubjects
		return promotion, nil
	}
	for _, subject := range subjects {
		promotion.Subjects = append(promotion.Subjects, subject.Name)
	}

	examCount, err := s.reportRepo.CountExamsByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	if examCount == 0 {
		promotion.Message = msgDoctorNoExams
		return promotion, nil
	}

	rows, err := s.reportRepo.GetResultRowsByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		promotion.Message = msgDoctorNoResults
		return promotion, nil
	}

	promotion.PromotionRate = promotionRate(countPromoted(rows), len(rows))
	return promotion, nil
}

// GetAllDoctorsPromotionRates fans the per-doctor computation out over every
// doctor. The overall figure is the mean of the individual rates.
func (s *ReportService) GetAllDoctorsPromotionRates(ctx context.Context) (*dto.AllDoctorsPromotionResponse, error) {
	doctors, err := s.userRepo.GetUsersByRole(ctx, models.RoleDoctor)
	if err != nil {
		return nil, err
	}

	promotions := make([]dto.DoctorPromotion, 0, len(doctors))
	for _, doctor := range doctors {
		promotion, err := s.doctorPromotion(ctx, doctor)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, *promotion)
	}

	return &dto.AllDoctorsPromotionResponse{
		DoctorPromotions:     promotions,
		OverallPromotionRate: meanOfRates(promotions),
	}, nil
}

// GetStudentYearAverage computes a student's mean score over the exams whose
// subject belongs to the given academic year
func (s *ReportService) GetStudentYearAverage(ctx context.Context, studentID int64, academicYear int) (*dto.StudentYearAverageResponse, error) {
	if academicYear < 1 || academicYear > 5 {
		return nil, apperrors.NewValidationError("academic year must be between 1 and 5")
	}

	if _, err := s.userRepo.GetUserByID(ctx, studentID); err != nil {
		return nil, err
	}

	scores, err := s.reportRepo.GetStudentScoresForYear(ctx, studentID, academicYear)
	if err != nil {
		return nil, err
	}

	response := &dto.StudentYearAverageResponse{
		StudentID:    studentID,
		AcademicYear: academicYear,
		Average:      averageScore(scores),
	}
	if len(scores) == 0 {
		response.Message = msgStudentNoResults
	}
	return response, nil
}

// GetDepartmentRankings ranks students by average score within each department
func (s *ReportService) GetDepartmentRankings(ctx context.Context) (*dto.RankingsResponse, error) {
	rows, err := s.reportRepo.GetStudentScoreRows(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.RankingsResponse{Rankings: computeDepartmentRankings(rows)}, nil
}
