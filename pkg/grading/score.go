package grading

import "math"

// Weighting of the combined interconnection-lab score.
const (
	connectionWeight = 0.6
	quizWeight       = 0.4
)

// Percent computes correct/total as a whole percentage with round-half-up.
// A zero denominator yields 0, never a panic or NaN.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(correct) / float64(total) * 100)
}

// CombinedScore blends the connection-mapping score with the knowledge-quiz
// score, weighted 60/40.
func CombinedScore(connectionScore, quizScore int) int {
	return roundHalfUp(float64(connectionScore)*connectionWeight + float64(quizScore)*quizWeight)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
