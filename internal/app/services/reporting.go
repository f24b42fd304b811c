package services

import (
	"sort"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
)

// computeExamAverages groups result rows by exam and computes the mean score
// per group, preserving the order exams first appear in.
func computeExamAverages(rows []*models.ExamResultRow) []dto.ExamAverage {
	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[int64]*bucket)
	var order []int64
	for _, row := range rows {
		b, ok := buckets[row.ExamID]
		if !ok {
			b = &bucket{}
			buckets[row.ExamID] = b
			order = append(order, row.ExamID)
		}
		b.sum += row.Score
		b.count++
	}

	averages := make([]dto.ExamAverage, 0, len(order))
	for _, examID := range order {
		b := buckets[examID]
		averages = append(averages, dto.ExamAverage{
			ExamID:       examID,
			AverageScore: float64(b.sum) / float64(b.count),
		})
	}
	return averages
}

// promotionRate returns promoted/total as a percentage, 0 when total is zero.
func promotionRate(promoted, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(promoted) / float64(total) * 100
}

// countPromoted counts the promoted rows among a doctor's results.
func countPromoted(rows []*models.DoctorResultRow) int {
	promoted := 0
	for _, row := range rows {
		if row.PromotionStatus == models.Promoted {
			promoted++
		}
	}
	return promoted
}

// meanOfRates is the overall figure for the all-doctors summary: the mean of
// the individual promotion rates, not a pooled rate over all results.
func meanOfRates(promotions []dto.DoctorPromotion) float64 {
	if len(promotions) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range promotions {
		sum += p.PromotionRate
	}
	return sum / float64(len(promotions))
}

// averageScore returns the mean of scores, 0 for an empty slice.
func averageScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// noDepartmentBucket groups students whose account has no department set.
const noDepartmentBucket = "No Department"

// computeDepartmentRankings averages each student's scores over all their
// results, groups students by department name, and sorts every group by
// average descending. Students without any results rank with an average of
// zero. The sort is stable, so students with equal averages keep their
// retrieval order.
func computeDepartmentRankings(rows []*models.StudentScoreRow) []dto.DepartmentRanking {
	type studentAgg struct {
		username string
		sum      int
		count    int
	}
	students := make(map[int64]*studentAgg)
	department := make(map[int64]string)
	var studentOrder []int64

	for _, row := range rows {
		agg, ok := students[row.StudentID]
		if !ok {
			agg = &studentAgg{username: row.Username}
			students[row.StudentID] = agg
			studentOrder = append(studentOrder, row.StudentID)

			name := noDepartmentBucket
			if row.DepartmentName != nil {
				name = *row.DepartmentName
			}
			department[row.StudentID] = name
		}
		if row.Score != nil {
			agg.sum += *row.Score
			agg.count++
		}
	}

	grouped := make(map[string][]dto.RankedStudent)
	var departmentOrder []string
	for _, studentID := range studentOrder {
		agg := students[studentID]
		name := department[studentID]
		if _, ok := grouped[name]; !ok {
			departmentOrder = append(departmentOrder, name)
		}
		average := 0.0
		if agg.count > 0 {
			average = float64(agg.sum) / float64(agg.count)
		}
		grouped[name] = append(grouped[name], dto.RankedStudent{
			StudentID:    studentID,
			Username:     agg.username,
			Average:      average,
			ResultsCount: agg.count,
		})
	}

	rankings := make([]dto.DepartmentRanking, 0, len(departmentOrder))
	for _, name := range departmentOrder {
		ranked := grouped[name]
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Average > ranked[j].Average
		})
		rankings = append(rankings, dto.DepartmentRanking{
			DepartmentName: name,
			Students:       ranked,
		})
	}
	return rankings
}
