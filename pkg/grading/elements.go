package grading

import (
	"github.com/liquidswrds/csec3330-labs/pkg/registry"
	"github.com/liquidswrds/csec3330-labs/pkg/session"
)

// axisCheck is the comparison of one classification axis against ground truth.
type axisCheck struct {
	required bool
	assigned bool
	match    bool
	expected string
	actual   string
}

func checkFunctional(el registry.Element, a session.Assignment) axisCheck {
	c := axisCheck{
		required: el.Kind.RequiresFunctional(),
		expected: string(el.GroundTruth.Functional),
	}
	if a.Functional != nil {
		c.assigned = true
		c.actual = string(*a.Functional)
		c.match = *a.Functional == el.GroundTruth.Functional
	}
	return c
}

func checkOperational(el registry.Element, a session.Assignment) axisCheck {
	c := axisCheck{
		required: el.Kind.RequiresOperational(),
		expected: string(el.GroundTruth.Operational),
	}
	if a.Operational != nil {
		c.assigned = true
		c.actual = string(*a.Operational)
		c.match = *a.Operational == el.GroundTruth.Operational
	}
	return c
}

// GradeElement grades one element against an assignment. Elements with no
// required axis get VerdictCorrect with an empty feedback string; callers
// exclude them from scoring.
func GradeElement(el registry.Element, a session.Assignment) Result {
	fn := checkFunctional(el, a)
	op := checkOperational(el, a)

	res := Result{ItemID: el.ID, Name: el.Name}

	switch {
	case !fn.required && !op.required:
		res.Verdict = VerdictCorrect
	case (fn.required && !fn.assigned) || (op.required && !op.assigned):
		res.Verdict = VerdictIncomplete
	case (!fn.required || fn.match) && (!op.required || op.match):
		res.Verdict = VerdictCorrect
	default:
		res.Verdict = VerdictIncorrect
	}

	res.Feedback = elementFeedback(el.Name, res.Verdict, fn, op)
	return res
}

// GradeElements grades every cataloged element against the snapshot, in
// registry iteration order. Elements with no required axis are excluded from
// both the numerator and the denominator.
func GradeElements(reg *registry.Registry, snap session.Snapshot) ElementReport {
	report := ElementReport{Results: make([]Result, 0, reg.ElementCount())}

	for _, el := range reg.Elements() {
		if !el.Kind.RequiresFunctional() && !el.Kind.RequiresOperational() {
			continue
		}
		report.Gradable++

		res := GradeElement(el, snap.Assignments[el.ID])
		report.Results = append(report.Results, res)

		switch res.Verdict {
		case VerdictCorrect:
			report.Correct++
		case VerdictIncomplete:
			report.Incomplete++
		default:
			report.Incorrect++
		}
	}

	report.Score = Percent(report.Correct, report.Gradable)
	return report
}

// CheckCompletion reports whether an element's assignment is complete (every
// required axis assigned) and correct (complete with every axis matching).
// Used for immediate per-element feedback as assignments land.
func CheckCompletion(el registry.Element, a session.Assignment) (complete, correct bool) {
	fn := checkFunctional(el, a)
	op := checkOperational(el, a)

	complete = (!fn.required || fn.assigned) && (!op.required || op.assigned)
	correct = complete && (!fn.required || fn.match) && (!op.required || op.match)
	return complete, correct
}

// MeasureProgress counts attempted and completed elements for progress
// display. Completed means fully and correctly assigned.
func MeasureProgress(reg *registry.Registry, snap session.Snapshot) Progress {
	p := Progress{}
	for _, el := range reg.Elements() {
		if !el.Kind.RequiresFunctional() && !el.Kind.RequiresOperational() {
			continue
		}
		p.TotalElements++

		a := snap.Assignments[el.ID]
		if a.Functional != nil || a.Operational != nil {
			p.Attempted++
		}
		if _, correct := CheckCompletion(el, a); correct {
			p.Completed++
		}
	}
	p.Percentage = Percent(p.Completed, p.TotalElements)
	return p
}
