package grading

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/liquidswrds/csec3330-labs/pkg/session"
)

// ExportRecord is the downloadable flat record of a lab attempt: the state
// snapshot, the grading report, and every computed score. The JSON shape is
// deterministic (struct field order, map keys sorted by encoding/json) so
// round-trip assertions in tests are stable.
type ExportRecord struct {
	Timestamp     time.Time        `json:"timestamp"`
	LabID         string           `json:"labId"`
	Snapshot      session.Snapshot `json:"snapshot"`
	Report        *Report          `json:"report"`
	QuizScore     int              `json:"quizScore"`
	CombinedScore int              `json:"combinedScore"`
}

// BuildExport assembles an export record from a grading run. The caller
// supplies the clock so exports stay reproducible in tests.
func BuildExport(snap session.Snapshot, report *Report, quizScore int, now time.Time) ExportRecord {
	return ExportRecord{
		Timestamp:     now.UTC(),
		LabID:         report.LabID,
		Snapshot:      snap,
		Report:        report,
		QuizScore:     quizScore,
		CombinedScore: CombinedScore(report.Connections.Score, quizScore),
	}
}

// Marshal renders the record as indented JSON, the shape handed to the
// browser for download.
func (r ExportRecord) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ExportFilename builds the suggested download filename, e.g.
// "interconnection-lab-results-2025-03-14.json".
func ExportFilename(labID string, t time.Time) string {
	return fmt.Sprintf("%s-results-%s.json", labID, t.UTC().Format("2006-01-02"))
}
