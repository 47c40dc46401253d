package quiz

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAnswerAndGrade(t *testing.T) {
	attempt := NewAttempt(InterconnectionQuestions())

	if attempt.Answered() != 0 {
		t.Errorf("Fresh attempt should have 0 answers, got %d", attempt.Answered())
	}

	// Answer everything correctly
	for _, q := range attempt.Questions() {
		if err := attempt.Answer(q.ID, q.CorrectAnswer); err != nil {
			t.Fatalf("Answer(%s) failed: %v", q.ID, err)
		}
	}

	b := attempt.Grade()
	if b.Score != 100 {
		t.Errorf("Expected score 100, got %d", b.Score)
	}
	if b.CorrectCount != b.TotalCount {
		t.Errorf("Expected all %d correct, got %d", b.TotalCount, b.CorrectCount)
	}
	if b.EarnedPoints != b.TotalPoints {
		t.Errorf("Expected %d points, got %d", b.TotalPoints, b.EarnedPoints)
	}
}

func TestGrade_PointsWeighted(t *testing.T) {
	questions := []Question{
		{ID: "small", Type: TrueFalse, CorrectAnswer: "true", Points: 5},
		{ID: "large", Type: MultipleChoice, CorrectAnswer: "x", Points: 15},
	}
	attempt := NewAttempt(questions)

	if err := attempt.Answer("large", "x"); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	b := attempt.Grade()
	if b.EarnedPoints != 15 || b.TotalPoints != 20 {
		t.Errorf("Expected 15/20 points, got %d/%d", b.EarnedPoints, b.TotalPoints)
	}
	if b.Score != 75 {
		t.Errorf("Expected score 75, got %d", b.Score)
	}
	if b.CorrectCount != 1 {
		t.Errorf("Expected 1 correct, got %d", b.CorrectCount)
	}
}

func TestGrade_EmptyAttempt(t *testing.T) {
	b := NewAttempt(InterconnectionQuestions()).Grade()
	if b.Score != 0 {
		t.Errorf("Expected score 0 with no answers, got %d", b.Score)
	}

	// Degenerate: no questions at all
	b = NewAttempt(nil).Grade()
	if b.Score != 0 {
		t.Errorf("Expected score 0 with no questions, got %d", b.Score)
	}
}

func TestAnswer_UnknownQuestion(t *testing.T) {
	attempt := NewAttempt(InterconnectionQuestions())
	if err := attempt.Answer("q999", "whatever"); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("Expected ErrUnknownQuestion, got %v", err)
	}
}

func TestAnswer_Overwrite(t *testing.T) {
	questions := []Question{{ID: "q", CorrectAnswer: "right", Points: 10}}
	attempt := NewAttempt(questions)

	if err := attempt.Answer("q", "wrong"); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if err := attempt.Answer("q", "right"); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if attempt.Answered() != 1 {
		t.Errorf("Overwriting must not double count, got %d", attempt.Answered())
	}
	if b := attempt.Grade(); b.Score != 100 {
		t.Errorf("Latest answer wins; expected 100, got %d", b.Score)
	}
}

func TestReset(t *testing.T) {
	attempt := NewAttempt(InterconnectionQuestions())
	if err := attempt.Answer("q1", "anything"); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	attempt.Reset()
	if attempt.Answered() != 0 {
		t.Errorf("Expected 0 answers after reset, got %d", attempt.Answered())
	}
}

func TestCorrectAnswerNeverSerialized(t *testing.T) {
	for _, q := range InterconnectionQuestions() {
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if _, ok := decoded["correctAnswer"]; ok {
			t.Errorf("Question %s serialized its correct answer", q.ID)
		}
	}
}

func TestInterconnectionQuestions(t *testing.T) {
	questions := InterconnectionQuestions()
	if len(questions) != 6 {
		t.Fatalf("Expected 6 questions, got %d", len(questions))
	}

	total := 0
	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("Duplicate question ID %s", q.ID)
		}
		seen[q.ID] = true
		if q.Points <= 0 {
			t.Errorf("Question %s has non-positive points", q.ID)
		}
		if q.Type == MultipleChoice && len(q.Options) == 0 {
			t.Errorf("Multiple choice question %s has no options", q.ID)
		}
		total += q.Points
	}
	if total != 85 {
		t.Errorf("Expected 85 total points, got %d", total)
	}
}
