package services

import (
	"reflect"
	"testing"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
)

func questionSet(correct ...int) []*models.Question {
	questions := make([]*models.Question, len(correct))
	for i, c := range correct {
		questions[i] = &models.Question{ID: int64(i + 1), CorrectOption: c}
	}
	return questions
}

func TestScoreAnswers(t *testing.T) {
	tests := []struct {
		name    string
		correct []int
		answers []dto.AnswerInput
		want    int
	}{
		{
			name:    "three of four correct",
			correct: []int{1, 2, 3, 4},
			answers: []dto.AnswerInput{
				{QuestionID: 1, SelectedOption: 1},
				{QuestionID: 2, SelectedOption: 2},
				{QuestionID: 3, SelectedOption: 4},
				{QuestionID: 4, SelectedOption: 4},
			},
			want: 3,
		},
		{
			name:    "all wrong",
			correct: []int{1, 1, 1},
			answers: []dto.AnswerInput{
				{QuestionID: 1, SelectedOption: 2},
				{QuestionID: 2, SelectedOption: 3},
				{QuestionID: 3, SelectedOption: 4},
			},
			want: 0,
		},
		{
			name:    "unanswered questions score zero",
			correct: []int{1, 2, 3, 4},
			answers: []dto.AnswerInput{
				{QuestionID: 2, SelectedOption: 2},
			},
			want: 1,
		},
		{
			name:    "no answers",
			correct: []int{1, 2},
			answers: nil,
			want:    0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key := buildAnswerKey(questionSet(tc.correct...))
			if got := scoreAnswers(key, tc.answers); got != tc.want {
				t.Errorf("scoreAnswers() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestResolvePromotion(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  models.PromotionStatus
	}{
		{name: "exactly half promotes", score: 2, total: 4, want: models.Promoted},
		{name: "above half promotes", score: 3, total: 4, want: models.Promoted},
		{name: "below half fails", score: 1, total: 4, want: models.NotPromoted},
		{name: "real division not truncation", score: 3, total: 5, want: models.Promoted},
		{name: "just under real half fails", score: 2, total: 5, want: models.NotPromoted},
		{name: "carve-out lower bound", score: 58, total: 200, want: models.Promoted},
		{name: "carve-out upper bound", score: 59, total: 200, want: models.Promoted},
		{name: "just below carve-out", score: 57, total: 200, want: models.NotPromoted},
		{name: "just above carve-out", score: 60, total: 200, want: models.NotPromoted},
		{name: "zero of zero promotes", score: 0, total: 0, want: models.Promoted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolvePromotion(tc.score, tc.total); got != tc.want {
				t.Errorf("resolvePromotion(%d, %d) = %s, want %s", tc.score, tc.total, got, tc.want)
			}
		})
	}
}

func TestInvalidQuestionIDs(t *testing.T) {
	key := buildAnswerKey(questionSet(1, 2, 3))

	tests := []struct {
		name    string
		answers []dto.AnswerInput
		want    []int64
	}{
		{
			name: "all valid",
			answers: []dto.AnswerInput{
				{QuestionID: 1, SelectedOption: 1},
				{QuestionID: 3, SelectedOption: 2},
			},
			want: nil,
		},
		{
			name: "every invalid id reported in order",
			answers: []dto.AnswerInput{
				{QuestionID: 99, SelectedOption: 1},
				{QuestionID: 2, SelectedOption: 1},
				{QuestionID: 42, SelectedOption: 1},
			},
			want: []int64{99, 42},
		},
		{
			name: "repeated invalid id reported once",
			answers: []dto.AnswerInput{
				{QuestionID: 7, SelectedOption: 1},
				{QuestionID: 7, SelectedOption: 2},
			},
			want: []int64{7},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := invalidQuestionIDs(key, tc.answers)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("invalidQuestionIDs() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDuplicateQuestionIDs(t *testing.T) {
	tests := []struct {
		name    string
		answers []dto.AnswerInput
		want    []int64
	}{
		{
			name: "no duplicates",
			answers: []dto.AnswerInput{
				{QuestionID: 1, SelectedOption: 1},
				{QuestionID: 2, SelectedOption: 2},
			},
			want: nil,
		},
		{
			name: "one duplicate reported once",
			answers: []dto.AnswerInput{
				{QuestionID: 1, SelectedOption: 1},
				{QuestionID: 1, SelectedOption: 2},
				{QuestionID: 1, SelectedOption: 3},
			},
			want: []int64{1},
		},
		{
			name: "duplicates in submission order",
			answers: []dto.AnswerInput{
				{QuestionID: 5, SelectedOption: 1},
				{QuestionID: 3, SelectedOption: 1},
				{QuestionID: 3, SelectedOption: 2},
				{QuestionID: 5, SelectedOption: 2},
			},
			want: []int64{3, 5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := duplicateQuestionIDs(tc.answers)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("duplicateQuestionIDs() = %v, want %v", got, tc.want)
			}
		})
	}
}
