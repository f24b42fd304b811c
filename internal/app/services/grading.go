package services

import (
	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
)

// Promotion carve-out: a raw score in this range always promotes,
// regardless of how many questions the exam has. Kept as-is from the
// original grading scale.
const (
	carveOutLow  = 58
	carveOutHigh = 59
)

// buildAnswerKey maps each question id to its correct option.
func buildAnswerKey(questions []*models.Question) map[int64]int {
	key := make(map[int64]int, len(questions))
	for _, q := range questions {
		key[q.ID] = q.CorrectOption
	}
	return key
}

// invalidQuestionIDs returns the submitted question ids that do not belong to
// the exam, in submission order. Every invalid id is reported, not just the first.
func invalidQuestionIDs(key map[int64]int, answers []dto.AnswerInput) []int64 {
	var invalid []int64
	seen := make(map[int64]bool)
	for _, a := range answers {
		if _, ok := key[a.QuestionID]; !ok && !seen[a.QuestionID] {
			invalid = append(invalid, a.QuestionID)
			seen[a.QuestionID] = true
		}
	}
	return invalid
}

// duplicateQuestionIDs returns the question ids answered more than once,
// in submission order.
func duplicateQuestionIDs(answers []dto.AnswerInput) []int64 {
	counts := make(map[int64]int)
	var duplicates []int64
	for _, a := range answers {
		counts[a.QuestionID]++
		if counts[a.QuestionID] == 2 {
			duplicates = append(duplicates, a.QuestionID)
		}
	}
	return duplicates
}

// scoreAnswers counts the answers whose selected option matches the answer key.
// Unanswered questions contribute nothing.
func scoreAnswers(key map[int64]int, answers []dto.AnswerInput) int {
	score := 0
	for _, a := range answers {
		if correct, ok := key[a.QuestionID]; ok && a.SelectedOption == correct {
			score++
		}
	}
	return score
}

// resolvePromotion applies the promotion policy: promoted when the score
// reaches half the question count (real division, so 3 of 5 passes), or when
// the score falls in the fixed carve-out range.
func resolvePromotion(score, totalQuestions int) models.PromotionStatus {
	if float64(score) >= float64(totalQuestions)/2 {
		return models.Promoted
	}
	if score >= carveOutLow && score <= carveOutHigh {
		return models.Promoted
	}
	return models.NotPromoted
}
