package grading

import (
	"github.com/liquidswrds/csec3330-labs/pkg/registry"
	"github.com/liquidswrds/csec3330-labs/pkg/session"
)

// Validate runs the full grading pass for a session: element classification,
// connection matching, and progress. Each run allocates fresh results; prior
// runs are never mutated. The output depends only on the registry and the
// snapshot, so identical inputs yield identical reports.
func Validate(reg *registry.Registry, snap session.Snapshot) *Report {
	return &Report{
		LabID:       reg.LabID(),
		Elements:    GradeElements(reg, snap),
		Connections: GradeConnections(reg, snap),
		Progress:    MeasureProgress(reg, snap),
	}
}

// ValidateStore snapshots the store and grades it.
func ValidateStore(store *session.Store) *Report {
	return Validate(store.Registry(), store.Snapshot())
}
