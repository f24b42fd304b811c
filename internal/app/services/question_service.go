package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
	"github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
	"github.com/rawad/acadex/internal/pkg/logger"
)

var questionTemplateHeader = []string{"question_text", "option1", "option2", "option3", "option4", "correct_option"}

// QuestionService handles adding questions to exams, including bulk import
// from spreadsheets
type QuestionService struct {
	examRepo    *repositories.ExamRepository
	subjectRepo *repositories.SubjectRepository
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(examRepo *repositories.ExamRepository, subjectRepo *repositories.SubjectRepository) *QuestionService {
	return &QuestionService{
		examRepo:    examRepo,
		subjectRepo: subjectRepo,
	}
}

// CreateQuestion adds a single question to an existing exam owned by the doctor
func (s *QuestionService) CreateQuestion(ctx context.Context, doctorID int64, req *dto.CreateQuestionRequest) (*models.Question, error) {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if subject.DoctorID == nil || *subject.DoctorID != doctorID {
		return nil, apperrors.ErrSubjectNotOwned
	}

	exam, err := s.examRepo.GetExamByID(ctx, req.ExamID)
	if err != nil {
		return nil, err
	}
	if exam.SubjectID != subject.ID {
		return nil, apperrors.ErrExamSubjectMismatch
	}

	question := &models.Question{
		QuestionText:  req.QuestionText,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectOption: req.CorrectOption,
		SubjectID:     subject.ID,
		ExamID:        exam.ID,
	}

	id, err := s.examRepo.CreateQuestion(ctx, question)
	if err != nil {
		return nil, err
	}
	question.ID = id

	return question, nil
}

// ImportQuestions creates an exam from a spreadsheet upload. The first row is
// a header and is skipped; malformed rows are dropped, not errored.
func (s *QuestionService) ImportQuestions(ctx context.Context, doctorID int64, req *dto.ImportQuestionsRequest, file io.Reader) (*dto.ImportQuestionsResponse, error) {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if subject.DoctorID == nil || *subject.DoctorID != doctorID {
		return nil, apperrors.ErrSubjectNotOwned
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

	rows, err := readSpreadsheetRows(file)
	if err != nil {
		return nil, err
	}

	questions, skipped := parseQuestionRows(rows)
	if len(questions) == 0 {
		return nil, apperrors.NewValidationError("no valid question rows found in the uploaded file")
	}

	exam := &models.Exam{
		SubjectID: subject.ID,
		DoctorID:  doctorID,
		ExamDate:  examDate,
		ExamType:  req.ExamType,
	}

	if err := s.examRepo.CreateExamWithQuestions(ctx, exam, questions); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("examId", exam.ID).
		Int("questions", len(questions)).
		Int("skippedRows", skipped).
		Msg("Exam created from spreadsheet import")

	return &dto.ImportQuestionsResponse{
		Exam:           exam,
		QuestionsCount: len(questions),
		SkippedRows:    skipped,
	}, nil
}

func readSpreadsheetRows(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.NewValidationError("uploaded file is not a valid xlsx spreadsheet")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewValidationError("uploaded spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

// parseQuestionRows converts spreadsheet rows to questions. Row layout:
// question_text, option1..option4, correct_option (1-4). The first row is
// treated as a header. Rows with missing cells or an out-of-range correct
// option are counted as skipped.
func parseQuestionRows(rows [][]string) ([]*models.Question, int) {
	var questions []*models.Question
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			continue
		}

		cells := make([]string, len(questionTemplateHeader))
		for j := range cells {
			if j < len(row) {
				cells[j] = strings.TrimSpace(row[j])
			}
		}

		valid := true
		for _, c := range cells {
			if c == "" {
				valid = false
				break
			}
		}
		if !valid {
			skipped++
			continue
		}

		correct, err := strconv.Atoi(cells[5])
		if err != nil || correct < 1 || correct > 4 {
			skipped++
			continue
		}

		questions = append(questions, &models.Question{
			QuestionText:  cells[0],
			Option1:       cells[1],
			Option2:       cells[2],
			Option3:       cells[3],
			Option4:       cells[4],
			CorrectOption: correct,
		})
	}

	return questions, skipped
}

// BuildTemplate produces the downloadable xlsx template for bulk question import
func (s *QuestionService) BuildTemplate() ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range questionTemplateHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	example := []any{"What is the capital of France?", "Paris", "London", "Berlin", "Madrid", 1}
	for i, v := range example {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheet, cell, v)
	}
	_ = f.SetColWidth(sheet, "A", "F", 24)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}
