package grading

import (
	"fmt"
	"strings"
)

// Feedback strings are a presentation concern, but their information content
// (name, axis, expected value, actual value) is asserted against by consumers
// and must stay deterministic.

func elementFeedback(name string, verdict Verdict, fn, op axisCheck) string {
	switch verdict {
	case VerdictCorrect:
		parts := make([]string, 0, 2)
		if fn.required {
			parts = append(parts, fmt.Sprintf("functional area correctly identified as %s", fn.expected))
		}
		if op.required {
			parts = append(parts, fmt.Sprintf("operational area correctly identified as %s", op.expected))
		}
		if len(parts) == 0 {
			return ""
		}
		return fmt.Sprintf("%s: ✓ %s", name, strings.Join(parts, "; "))

	case VerdictIncomplete:
		missing := make([]string, 0, 2)
		if fn.required && !fn.assigned {
			missing = append(missing, "functional")
		}
		if op.required && !op.assigned {
			missing = append(missing, "operational")
		}
		return fmt.Sprintf("%s: ⚠ Not yet assigned (%s area needed)", name, strings.Join(missing, " and "))

	default:
		wrong := make([]string, 0, 2)
		if fn.required && !fn.match {
			wrong = append(wrong, fmt.Sprintf("incorrect functional area assignment (should be %s, got %s)", fn.expected, fn.actual))
		}
		if op.required && !op.match {
			wrong = append(wrong, fmt.Sprintf("incorrect operational area assignment (should be %s, got %s)", op.expected, op.actual))
		}
		return fmt.Sprintf("%s: ✗ %s", name, strings.Join(wrong, "; "))
	}
}

func correctConnectionFeedback(name string) string {
	return fmt.Sprintf("%s: ✓ This connection is correctly configured", name)
}

func partialConnectionFeedback(name string, mismatched []string) string {
	return fmt.Sprintf("%s: connection exists but needs adjustment: %s", name, strings.Join(mismatched, ", "))
}

func unnecessaryConnectionFeedback(name string) string {
	return fmt.Sprintf("%s: ✗ This connection may not be necessary for normal operations", name)
}
