// Package quiz implements the knowledge-check portion of the interconnection
// lab: a fixed question set with per-question point weights, graded by exact
// answer match.
package quiz

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var ErrUnknownQuestion = errors.New("unknown question")

// QuestionType distinguishes how a question is presented.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	Scenario       QuestionType = "scenario"
)

// Difficulty levels for display and sequencing.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Question is one assessment item. CorrectAnswer matching is exact.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"-"`
	Explanation   string       `json:"explanation"`
	Difficulty    Difficulty   `json:"difficulty"`
	Points        int          `json:"points"`
}

// Attempt records a learner's answers against a question set.
type Attempt struct {
	questions []Question
	byID      map[string]Question
	answers   map[string]string
	mu        sync.RWMutex
}

// NewAttempt starts a fresh attempt over the given questions.
func NewAttempt(questions []Question) *Attempt {
	a := &Attempt{
		questions: questions,
		byID:      make(map[string]Question, len(questions)),
		answers:   make(map[string]string),
	}
	for _, q := range questions {
		a.byID[q.ID] = q
	}
	return a
}

// Questions returns the question set in presentation order.
func (a *Attempt) Questions() []Question {
	return a.questions
}

// Answer records or overwrites the learner's answer to one question.
func (a *Attempt) Answer(questionID, answer string) error {
	if _, ok := a.byID[questionID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.answers[questionID] = answer
	return nil
}

// Answered returns the number of questions with a recorded answer.
func (a *Attempt) Answered() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.answers)
}

// Reset discards all recorded answers.
func (a *Attempt) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.answers = make(map[string]string)
}

// ScoreBreakdown is the graded outcome of an attempt.
type ScoreBreakdown struct {
	CorrectCount int `json:"correctCount"`
	TotalCount   int `json:"totalCount"`
	EarnedPoints int `json:"earnedPoints"`
	TotalPoints  int `json:"totalPoints"`
	Score        int `json:"score"` // points-weighted percent, 0-100
}

// Grade scores the attempt: earned points over total points, rounded half-up
// to a whole percentage. No answers yields 0.
func (a *Attempt) Grade() ScoreBreakdown {
	a.mu.RLock()
	defer a.mu.RUnlock()

	b := ScoreBreakdown{TotalCount: len(a.questions)}
	for _, q := range a.questions {
		b.TotalPoints += q.Points
		if a.answers[q.ID] == q.CorrectAnswer {
			b.CorrectCount++
			b.EarnedPoints += q.Points
		}
	}
	if b.TotalPoints > 0 {
		b.Score = int(math.Floor(float64(b.EarnedPoints)/float64(b.TotalPoints)*100 + 0.5))
	}
	return b
}
