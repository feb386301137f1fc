package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/qavit/ekiti/internal/domain"
	"github.com/qavit/ekiti/internal/quiz"
)

func TestPresenterShowQuestion(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPresenter(strings.NewReader(""), &out)

	q := &quiz.Question{
		Prompt:       `What does "kucing" mean?`,
		Accepted:     []string{"cat"},
		Options:      []string{"dog", "cat", "bird"},
		CorrectIndex: 1,
	}
	p.ShowQuestion(q, 1, 5)

	got := out.String()
	if !strings.Contains(got, "Question 1 of 5") {
		t.Errorf("Expected the progress line, got %q", got)
	}
	for _, want := range []string{"1. dog", "2. cat", "3. bird"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected option %q in output, got %q", want, got)
		}
	}
}

func TestPresenterReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPresenter(strings.NewReader("  cat\r\nnext\n"), &out)

	line, err := p.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine() returned an unexpected error: %v", err)
	}
	if line != "  cat" {
		t.Errorf("Expected the raw line without the newline, got %q", line)
	}

	line, err = p.ReadLine()
	if err != nil || line != "next" {
		t.Errorf("Expected the second line, got %q, %v", line, err)
	}

	if _, err := p.ReadLine(); err == nil {
		t.Error("Expected an error at end of input")
	}
}

func TestPresenterSummaryListsUnfamiliarWords(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPresenter(strings.NewReader(""), &out)

	p.ShowSummary(quiz.Summary{
		Presented: 3,
		Correct:   2,
		Incorrect: 1,
		UnfamiliarWords: []*domain.CardEntry{
			{Word: "anjing", Language: "id", Translations: []string{"dog"}},
		},
	})

	got := out.String()
	if !strings.Contains(got, "Accuracy: 66.7%") {
		t.Errorf("Expected the accuracy line, got %q", got)
	}
	if !strings.Contains(got, "anjing (dog)") {
		t.Errorf("Expected the unfamiliar word in the review list, got %q", got)
	}
}
