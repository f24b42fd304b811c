package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func questionRow(text, o1, o2, o3, o4, correct string) []string {
	return []string{text, o1, o2, o3, o4, correct}
}

func TestParseQuestionRows(t *testing.T) {
	rows := [][]string{
		questionTemplateHeader,
		questionRow("What is 2+2?", "3", "4", "5", "6", "2"),
		questionRow("Largest planet?", "Mars", "Venus", "Jupiter", "Earth", "3"),
	}

	questions, skipped := parseQuestionRows(rows)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(questions) != 2 {
		t.Fatalf("parsed %d questions, want 2", len(questions))
	}
	if questions[0].QuestionText != "What is 2+2?" || questions[0].CorrectOption != 2 {
		t.Errorf("first question parsed as %+v", questions[0])
	}
	if questions[1].Option3 != "Jupiter" || questions[1].CorrectOption != 3 {
		t.Errorf("second question parsed as %+v", questions[1])
	}
}

func TestParseQuestionRows_SkipsMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{name: "missing option cell", row: questionRow("Q?", "a", "b", "", "d", "1")},
		{name: "short row", row: []string{"Q?", "a", "b"}},
		{name: "non-numeric correct option", row: questionRow("Q?", "a", "b", "c", "d", "two")},
		{name: "correct option below range", row: questionRow("Q?", "a", "b", "c", "d", "0")},
		{name: "correct option above range", row: questionRow("Q?", "a", "b", "c", "d", "5")},
		{name: "blank question text", row: questionRow("  ", "a", "b", "c", "d", "1")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := [][]string{
				questionTemplateHeader,
				tc.row,
				questionRow("Valid?", "a", "b", "c", "d", "4"),
			}
			questions, skipped := parseQuestionRows(rows)
			if skipped != 1 {
				t.Errorf("skipped = %d, want 1", skipped)
			}
			if len(questions) != 1 || questions[0].QuestionText != "Valid?" {
				t.Errorf("parsed questions = %+v, want only the valid row", questions)
			}
		})
	}
}

func TestParseQuestionRows_HeaderOnly(t *testing.T) {
	questions, skipped := parseQuestionRows([][]string{questionTemplateHeader})
	if len(questions) != 0 || skipped != 0 {
		t.Errorf("got %d questions and %d skipped, want 0 and 0", len(questions), skipped)
	}
}

func TestParseQuestionRows_TrimsWhitespace(t *testing.T) {
	rows := [][]string{
		questionTemplateHeader,
		questionRow("  Spaced?  ", " a ", "b", "c", "d", " 1 "),
	}
	questions, skipped := parseQuestionRows(rows)
	if skipped != 0 || len(questions) != 1 {
		t.Fatalf("got %d questions and %d skipped, want 1 and 0", len(questions), skipped)
	}
	if questions[0].QuestionText != "Spaced?" || questions[0].Option1 != "a" {
		t.Errorf("cells not trimmed: %+v", questions[0])
	}
}

func TestBuildTemplate(t *testing.T) {
	svc := &QuestionService{}

	content, err := svc.BuildTemplate()
	if err != nil {
		t.Fatalf("BuildTemplate() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("template is not a readable xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("reading template rows: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("template has %d rows, want header plus example row", len(rows))
	}
	for i, want := range questionTemplateHeader {
		if i >= len(rows[0]) || rows[0][i] != want {
			t.Fatalf("header row = %v, want %v", rows[0], questionTemplateHeader)
		}
	}

	// The example row must itself survive the import parser.
	questions, skipped := parseQuestionRows(rows)
	if skipped != 0 || len(questions) != 1 {
		t.Errorf("example row parsed as %d questions with %d skipped", len(questions), skipped)
	}
}
