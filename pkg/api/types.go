package api

import (
	"time"

	"github.com/liquidswrds/csec3330-labs/pkg/grading"
	"github.com/liquidswrds/csec3330-labs/pkg/quiz"
	"github.com/liquidswrds/csec3330-labs/pkg/registry"
	"github.com/liquidswrds/csec3330-labs/pkg/session"
)

// API Request/Response Types

// CreateSessionRequest starts a new lab session.
type CreateSessionRequest struct {
	LabID string `json:"labId"`
}

// CreateSessionResponse returns the session identity and its bearer token.
type CreateSessionResponse struct {
	SessionID string    `json:"sessionId"`
	LabID     string    `json:"labId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

// LabResponse describes one lab in the catalog.
type LabResponse struct {
	ID          string `json:"id"`
	Elements    int    `json:"elements"`
	Connections int    `json:"connections"`
	HasQuiz     bool   `json:"hasQuiz"`
}

// ElementResponse describes one element of the lab under classification.
// Ground truth is never included. Meta carries the system attributes the
// interconnection lab displays per node.
type ElementResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Meta        *registry.SystemMeta `json:"meta,omitempty"`
}

// SessionStateResponse is the current working state of a session.
type SessionStateResponse struct {
	SessionID   string                `json:"sessionId"`
	LabID       string                `json:"labId"`
	Assignments int                   `json:"assignments"`
	Connections []registry.Connection `json:"connections"`
	Snapshot    session.Snapshot      `json:"snapshot"`
}

// AssignmentResponse echoes the stored state of one element after a mutation.
// Complete and Correct give the immediate per-element feedback the UI shows
// as assignments land.
type AssignmentResponse struct {
	ElementID   string  `json:"elementId"`
	Functional  *string `json:"functional"`
	Operational *string `json:"operational"`
	Complete    bool    `json:"complete"`
	Correct     bool    `json:"correct"`
}

// ConnectionResponse returns a created connection.
type ConnectionResponse struct {
	Connection registry.Connection `json:"connection"`
	Count      int                 `json:"count"`
}

// ValidateResponse carries the full grading report plus the combined score
// when the lab has a quiz component.
type ValidateResponse struct {
	Report        *grading.Report `json:"report"`
	QuizScore     *int            `json:"quizScore,omitempty"`
	CombinedScore *int            `json:"combinedScore,omitempty"`
}

// QuizResponse lists the questions of the session's quiz with answer state.
type QuizResponse struct {
	Questions []quiz.Question `json:"questions"`
	Answered  int             `json:"answered"`
	Total     int             `json:"total"`
}

// QuizGradeResponse is the graded quiz breakdown.
type QuizGradeResponse struct {
	Breakdown quiz.ScoreBreakdown `json:"breakdown"`
}

// ExportResponse wraps the downloadable results document.
type ExportResponse struct {
	Filename string               `json:"filename"`
	Record   grading.ExportRecord `json:"record"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Sessions  int       `json:"sessions"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
