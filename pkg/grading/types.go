// Package grading compares a session's assignments and connections against
// the lab registry's answer key and produces per-item verdicts with
// multi-axis partial-credit scores. Everything here is a pure function over
// (registry, snapshot); two runs over identical inputs produce identical
// output.
package grading

import (
	"github.com/liquidswrds/csec3330-labs/pkg/registry"
)

// Verdict classifies one graded item.
type Verdict string

const (
	VerdictCorrect          Verdict = "correct"
	VerdictIncorrect        Verdict = "incorrect"
	VerdictPartiallyCorrect Verdict = "partially_correct"
	VerdictIncomplete       Verdict = "incomplete"
)

// Result is the per-item outcome of a grading run.
type Result struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Verdict  Verdict `json:"verdict"`
	Feedback string  `json:"feedback"`
}

// ElementReport aggregates the element-classification grading run.
type ElementReport struct {
	Results    []Result `json:"results"`
	Gradable   int      `json:"gradable"`   // elements with at least one required axis
	Correct    int      `json:"correct"`
	Incorrect  int      `json:"incorrect"`
	Incomplete int      `json:"incomplete"`
	Score      int      `json:"score"` // percent, 0-100
}

// ConnectionReport aggregates the connection grading run. TypeScores holds
// one entry per connection type; a type with no user connections scores 0.
type ConnectionReport struct {
	Results          []Result                        `json:"results"`
	Total            int                             `json:"total"` // user-created connections graded
	Correct          int                             `json:"correct"`
	PartiallyCorrect int                             `json:"partiallyCorrect"`
	Incorrect        int                             `json:"incorrect"`
	Score            int                             `json:"score"`
	TypeScores       map[registry.ConnectionType]int `json:"typeScores"`
}

// Progress summarizes how far a learner is through the classification lab.
// Completed counts elements whose every required axis is assigned and
// correct; Attempted counts elements with at least one axis assigned.
type Progress struct {
	TotalElements int `json:"totalElements"`
	Attempted     int `json:"attempted"`
	Completed     int `json:"completed"`
	Percentage    int `json:"percentage"`
}

// Report is the full output of one validation run. Results are ordered by
// registry iteration order (elements) and creation order (connections), so a
// run is reproducible byte for byte.
type Report struct {
	LabID       string           `json:"labId"`
	Elements    ElementReport    `json:"elements"`
	Connections ConnectionReport `json:"connections"`
	Progress    Progress         `json:"progress"`
}
