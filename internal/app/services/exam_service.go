package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
	"github.com/rawad/acadex/internal/pkg/logger"
)

const examDateLayout = "2006-01-02"

// ExamService handles the exam lifecycle: creation, submission and grading
type ExamService struct {
	examRepo    *repositories.ExamRepository
	subjectRepo *repositories.SubjectRepository
	userRepo    *repositories.UserRepository
}

// NewExamService creates a new ExamService
func NewExamService(
	examRepo *repositories.ExamRepository,
	subjectRepo *repositories.SubjectRepository,
	userRepo *repositories.UserRepository,
) *ExamService {
	return &ExamService{
		examRepo:    examRepo,
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
	}
}

// verifySubjectOwnership loads the subject and checks the doctor is assigned to it
func (s *ExamService) verifySubjectOwnership(ctx context.Context, subjectID, doctorID int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if subject.DoctorID == nil || *subject.DoctorID != doctorID {
		return nil, apperrors.ErrSubjectNotOwned
	}
	return subject, nil
}

// CreateExam creates an exam with its question set in one transaction.
// The requesting doctor must own the subject, and the subject must not
// already have an exam on the same date.
func (s *ExamService) CreateExam(ctx context.Context, doctorID int64, req *dto.CreateExamRequest) (*dto.CreateExamResponse, error) {
	subject, err := s.verifySubjectOwnership(ctx, req.SubjectID, doctorID)
	if err != nil {
		return nil, err
	}

	examDate, err := time.Parse(examDateLayout, req.ExamDate)
	if err != nil {
		return nil, apperrors.NewValidationError("examDate must be in YYYY-MM-DD format")
	}

	exists, err := s.examRepo.ExamExistsBySubjectAndDate(ctx, subject.ID, examDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrExamAlreadyExists
	}

	exam := &models.Exam{
		SubjectID: subject.ID,
		DoctorID:  doctorID,
		ExamDate:  examDate,
		ExamType:  req.ExamType,
	}

	questions := make([]*models.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, &models.Question{
			QuestionText:  q.QuestionText,
			Option1:       q.Option1,
			Option2:       q.Option2,
			Option3:       q.Option3,
			Option4:       q.Option4,
			CorrectOption: q.CorrectOption,
		})
	}

	if err := s.examRepo.CreateExamWithQuestions(ctx, exam, questions); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("examId", exam.ID).
		Int64("subjectId", subject.ID).
		Int("questions", len(questions)).
		Msg("Exam created")

	return &dto.CreateExamResponse{
		Exam:           exam,
		QuestionsCount: len(questions),
	}, nil
}

// SubmitExam grades a student's submission and persists answers and result
// atomically. Submission is exactly-once per (exam, student).
func (s *ExamService) SubmitExam(ctx context.Context, studentID, examID int64, req *dto.SubmitExamRequest) (*dto.SubmitExamResponse, error) {
	exam, err := s.examRepo.GetExamByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	submitted, err := s.examRepo.HasResult(ctx, exam.ID, studentID)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, apperrors.ErrAlreadySubmitted
	}

	questions, err := s.examRepo.GetQuestionsByExamID(ctx, exam.ID)
	if err != nil {
		return nil, err
	}

	if duplicates := duplicateQuestionIDs(req.Answers); len(duplicates) > 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("duplicate answers for question IDs: %s", formatIDs(duplicates)))
	}

	key := buildAnswerKey(questions)
	if invalid := invalidQuestionIDs(key, req.Answers); len(invalid) > 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid question IDs: %s", formatIDs(invalid)))
	}

	score := scoreAnswers(key, req.Answers)
	status := resolvePromotion(score, len(questions))

	answers := make([]*models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, &models.Answer{
			ExamID:         exam.ID,
			QuestionID:     a.QuestionID,
			StudentID:      studentID,
			SelectedOption: a.SelectedOption,
		})
	}

	result := &models.Result{
		ExamID:          exam.ID,
		StudentID:       studentID,
		Score:           score,
		PromotionStatus: status,
	}

	if err := s.examRepo.SaveSubmission(ctx, answers, result); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("examId", exam.ID).
		Int64("studentId", studentID).
		Int("score", score).
		Str("promotionStatus", string(status)).
		Msg("Exam submission graded")

	return &dto.SubmitExamResponse{
		ExamID:          exam.ID,
		StudentID:       studentID,
		Score:           score,
		TotalQuestions:  len(questions),
		PromotionStatus: status,
		IsTraining:      false,
	}, nil
}

func formatIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}

// GetSubjectExams lists a subject's exams for the student view
func (s *ExamService) GetSubjectExams(ctx context.Context, subjectID int64) (*dto.SubjectExamsResponse, error) {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return s.listSubjectExams(ctx, subject)
}

// GetSubjectExamsForDoctor lists a subject's exams with their full question
// sets, correct options included. Doctors only see subjects they own.
func (s *ExamService) GetSubjectExamsForDoctor(ctx context.Context, subjectID, doctorID int64) (*dto.DoctorSubjectExamsResponse, error) {
	subject, err := s.verifySubjectOwnership(ctx, subjectID, doctorID)
	if err != nil {
		return nil, err
	}

	exams, _, err := s.examRepo.GetExamsBySubjectID(ctx, subject.ID)
	if err != nil {
		return nil, err
	}

	details := make([]dto.DoctorExamDetail, 0, len(exams))
	for _, exam := range exams {
		questions, err := s.examRepo.GetQuestionsByExamID(ctx, exam.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, dto.DoctorExamDetail{
			ExamID:    exam.ID,
			ExamDate:  exam.ExamDate,
			ExamType:  exam.ExamType,
			Questions: questions,
		})
	}

	return &dto.DoctorSubjectExamsResponse{
		Subject: dto.SubjectHeader{
			SubjectID:    subject.ID,
			Name:         subject.Name,
			AcademicYear: subject.AcademicYear,
		},
		Exams: details,
	}, nil
}

func (s *ExamService) listSubjectExams(ctx context.Context, subject *models.Subject) (*dto.SubjectExamsResponse, error) {
	exams, _, err := s.examRepo.GetExamsBySubjectID(ctx, subject.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ExamSummary, 0, len(exams))
	for _, exam := range exams {
		summaries = append(summaries, dto.ExamSummary{
			ExamID:   exam.ID,
			ExamDate: exam.ExamDate,
			ExamType: exam.ExamType,
		})
	}

	return &dto.SubjectExamsResponse{
		Subject: dto.SubjectHeader{
			SubjectID:    subject.ID,
			Name:         subject.Name,
			AcademicYear: subject.AcademicYear,
		},
		Exams: summaries,
	}, nil
}

// GetExamQuestions returns an exam's questions with the correct options hidden
func (s *ExamService) GetExamQuestions(ctx context.Context, examID int64) (*dto.ExamQuestionsResponse, error) {
	exam, err := s.examRepo.GetExamByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.GetSubjectByID(ctx, exam.SubjectID)
	if err != nil {
		return nil, err
	}

	questions, err := s.examRepo.GetQuestionsByExamID(ctx, exam.ID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.ExamQuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, dto.ExamQuestionView{
			QuestionID:   q.ID,
			QuestionText: q.QuestionText,
			Option1:      q.Option1,
			Option2:      q.Option2,
			Option3:      q.Option3,
			Option4:      q.Option4,
		})
	}

	response := &dto.ExamQuestionsResponse{
		ExamID:   exam.ID,
		ExamDate: exam.ExamDate,
		ExamType: exam.ExamType,
		Subject: dto.SubjectHeader{
			SubjectID:    subject.ID,
			Name:         subject.Name,
			AcademicYear: subject.AcademicYear,
		},
		Questions: views,
	}

	if doctor, err := s.userRepo.GetUserByID(ctx, exam.DoctorID); err == nil {
		response.Doctor = &dto.DoctorHeader{ID: doctor.ID, Username: doctor.Username}
	}

	return response, nil
}
