package grading

import (
	"github.com/liquidswrds/csec3330-labs/pkg/registry"
	"github.com/liquidswrds/csec3330-labs/pkg/session"
)

// GradeConnection grades one user connection against the registry's answer
// key. Matching is by unordered endpoint pair; a matched connection is then
// compared on connection type and data flow. Direction is compared only when
// both sides are unidirectional, since a bidirectional flow declares none.
func GradeConnection(reg *registry.Registry, conn registry.Connection) Result {
	res := Result{ItemID: conn.ID, Name: connectionName(reg, conn)}

	truth, ok := reg.MatchConnection(conn.SourceID, conn.TargetID)
	if !ok {
		res.Verdict = VerdictIncorrect
		res.Feedback = unnecessaryConnectionFeedback(res.Name)
		return res
	}

	var mismatched []string
	if conn.ConnectionType != truth.ConnectionType {
		mismatched = append(mismatched, "connection type")
	}
	if conn.DataFlow != truth.DataFlow {
		mismatched = append(mismatched, "data flow")
	} else if conn.DataFlow == registry.FlowUnidirectional && !directionMatches(conn, truth) {
		mismatched = append(mismatched, "data flow direction")
	}

	if len(mismatched) == 0 {
		res.Verdict = VerdictCorrect
		res.Feedback = correctConnectionFeedback(res.Name)
		return res
	}

	res.Verdict = VerdictPartiallyCorrect
	res.Feedback = partialConnectionFeedback(res.Name, mismatched)
	return res
}

// directionMatches compares the declared direction of two unidirectional
// connections, accounting for the user possibly drawing the pair in the
// opposite endpoint order from the answer key.
func directionMatches(user, truth registry.Connection) bool {
	sameOrder := user.SourceID == truth.SourceID
	if sameOrder {
		return user.Direction == truth.Direction
	}
	return user.Direction != truth.Direction
}

// GradeConnections grades every user-created connection in the snapshot, in
// creation order, and computes the overall and per-type scores. A type the
// learner drew no connections of scores 0 rather than being excluded; the
// display treats a blank category as unattempted work.
func GradeConnections(reg *registry.Registry, snap session.Snapshot) ConnectionReport {
	report := ConnectionReport{
		Results:    make([]Result, 0, len(snap.Connections)),
		TypeScores: make(map[registry.ConnectionType]int, len(registry.ConnectionTypes)),
	}

	typeTotals := make(map[registry.ConnectionType]int)
	typeCorrect := make(map[registry.ConnectionType]int)

	for _, conn := range snap.Connections {
		if !conn.UserCreated {
			continue
		}
		report.Total++
		typeTotals[conn.ConnectionType]++

		res := GradeConnection(reg, conn)
		report.Results = append(report.Results, res)

		switch res.Verdict {
		case VerdictCorrect:
			report.Correct++
			typeCorrect[conn.ConnectionType]++
		case VerdictPartiallyCorrect:
			report.PartiallyCorrect++
		default:
			report.Incorrect++
		}
	}

	report.Score = Percent(report.Correct, report.Total)
	for _, t := range registry.ConnectionTypes {
		report.TypeScores[t] = Percent(typeCorrect[t], typeTotals[t])
	}
	return report
}

func connectionName(reg *registry.Registry, conn registry.Connection) string {
	return elementName(reg, conn.SourceID) + " ↔ " + elementName(reg, conn.TargetID)
}

func elementName(reg *registry.Registry, id string) string {
	el, err := reg.Element(id)
	if err != nil {
		return id
	}
	return el.Name
}
