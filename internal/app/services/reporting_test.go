package services

import (
	"math"
	"testing"

	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/app/models/dto"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeExamAverages(t *testing.T) {
	rows := []*models.ExamResultRow{
		{ExamID: 1, Score: 8},
		{ExamID: 1, Score: 6},
		{ExamID: 2, Score: 10},
		{ExamID: 1, Score: 7},
	}

	averages := computeExamAverages(rows)
	if len(averages) != 2 {
		t.Fatalf("expected 2 exam groups, got %d", len(averages))
	}
	if averages[0].ExamID != 1 || !almostEqual(averages[0].AverageScore, 7) {
		t.Errorf("exam 1 average = %+v, want examId 1 average 7", averages[0])
	}
	if averages[1].ExamID != 2 || !almostEqual(averages[1].AverageScore, 10) {
		t.Errorf("exam 2 average = %+v, want examId 2 average 10", averages[1])
	}
}

func TestComputeExamAverages_Empty(t *testing.T) {
	if averages := computeExamAverages(nil); len(averages) != 0 {
		t.Errorf("expected no averages for no rows, got %v", averages)
	}
}

func TestPromotionRate(t *testing.T) {
	tests := []struct {
		name     string
		promoted int
		total    int
		want     float64
	}{
		{name: "half promoted", promoted: 2, total: 4, want: 50},
		{name: "all promoted", promoted: 3, total: 3, want: 100},
		{name: "none promoted", promoted: 0, total: 5, want: 0},
		{name: "zero total avoids division by zero", promoted: 0, total: 0, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := promotionRate(tc.promoted, tc.total); !almostEqual(got, tc.want) {
				t.Errorf("promotionRate(%d, %d) = %f, want %f", tc.promoted, tc.total, got, tc.want)
			}
		})
	}
}

func TestMeanOfRates(t *testing.T) {
	promotions := []dto.DoctorPromotion{
		{DoctorID: 1, PromotionRate: 100},
		{DoctorID: 2, PromotionRate: 50},
		{DoctorID: 3, PromotionRate: 0},
	}
	if got := meanOfRates(promotions); !almostEqual(got, 50) {
		t.Errorf("meanOfRates() = %f, want 50", got)
	}

	if got := meanOfRates(nil); got != 0 {
		t.Errorf("meanOfRates(nil) = %f, want 0", got)
	}
}

func TestAverageScore(t *testing.T) {
	if got := averageScore([]int{80, 90, 70}); !almostEqual(got, 80) {
		t.Errorf("averageScore() = %f, want 80", got)
	}
	if got := averageScore(nil); got != 0 {
		t.Errorf("averageScore(nil) = %f, want 0", got)
	}
}

func score(n int) *int {
	return &n
}

func TestComputeDepartmentRankings(t *testing.T) {
	medicine := "Medicine"
	rows := []*models.StudentScoreRow{
		{StudentID: 1, Username: "amal", DepartmentName: &medicine, Score: score(90)},
		{StudentID: 2, Username: "basil", DepartmentName: &medicine, Score: score(70)},
		{StudentID: 3, Username: "carla", DepartmentName: &medicine, Score: score(85)},
	}

	rankings := computeDepartmentRankings(rows)
	if len(rankings) != 1 {
		t.Fatalf("expected 1 department, got %d", len(rankings))
	}
	if rankings[0].DepartmentName != "Medicine" {
		t.Fatalf("department name = %q, want Medicine", rankings[0].DepartmentName)
	}

	got := make([]float64, 0, len(rankings[0].Students))
	for _, s := range rankings[0].Students {
		got = append(got, s.Average)
	}
	want := []float64{90, 85, 70}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("ranking averages = %v, want %v", got, want)
		}
	}
}

func TestComputeDepartmentRankings_AveragesPerStudent(t *testing.T) {
	medicine := "Medicine"
	rows := []*models.StudentScoreRow{
		{StudentID: 1, Username: "amal", DepartmentName: &medicine, Score: score(10)},
		{StudentID: 1, Username: "amal", DepartmentName: &medicine, Score: score(6)},
		{StudentID: 2, Username: "basil", DepartmentName: &medicine, Score: score(7)},
	}

	rankings := computeDepartmentRankings(rows)
	students := rankings[0].Students
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	if students[0].StudentID != 1 || !almostEqual(students[0].Average, 8) || students[0].ResultsCount != 2 {
		t.Errorf("top student = %+v, want student 1 with average 8 over 2 results", students[0])
	}
	if students[1].StudentID != 2 || !almostEqual(students[1].Average, 7) {
		t.Errorf("second student = %+v, want student 2 with average 7", students[1])
	}
}

func TestComputeDepartmentRankings_NoDepartmentBucket(t *testing.T) {
	medicine := "Medicine"
	rows := []*models.StudentScoreRow{
		{StudentID: 1, Username: "amal", DepartmentName: &medicine, Score: score(50)},
		{StudentID: 2, Username: "basil", DepartmentName: nil, Score: score(60)},
	}

	rankings := computeDepartmentRankings(rows)
	if len(rankings) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(rankings))
	}

	var found bool
	for _, r := range rankings {
		if r.DepartmentName == noDepartmentBucket {
			found = true
			if len(r.Students) != 1 || r.Students[0].StudentID != 2 {
				t.Errorf("unassigned bucket = %+v, want only student 2", r.Students)
			}
		}
	}
	if !found {
		t.Errorf("expected a %q group, got %+v", noDepartmentBucket, rankings)
	}
}

func TestComputeDepartmentRankings_StableTies(t *testing.T) {
	medicine := "Medicine"
	rows := []*models.StudentScoreRow{
		{StudentID: 1, Username: "amal", DepartmentName: &medicine, Score: score(80)},
		{StudentID: 2, Username: "basil", DepartmentName: &medicine, Score: score(80)},
	}

	students := computeDepartmentRankings(rows)[0].Students
	if students[0].StudentID != 1 || students[1].StudentID != 2 {
		t.Errorf("tied students reordered: %+v", students)
	}
}

func TestComputeDepartmentRankings_StudentWithoutResults(t *testing.T) {
	medicine := "Medicine"
	rows := []*models.StudentScoreRow{
		{StudentID: 1, Username: "amal", DepartmentName: &medicine, Score: score(75)},
		{StudentID: 2, Username: "basil", DepartmentName: &medicine, Score: nil},
	}

	students := computeDepartmentRankings(rows)[0].Students
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	if students[1].StudentID != 2 {
		t.Fatalf("student without results missing from rankings: %+v", students)
	}
	if students[1].Average != 0 || students[1].ResultsCount != 0 {
		t.Errorf("student without results = %+v, want average 0 over 0 results", students[1])
	}
}
