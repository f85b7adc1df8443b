package scoring

import "math"

// Consistency implements the §4.5 softmax-normalised confidence metric.
// scores must be the raw scores of every non-disqualified candidate
// (winner included, any order); winnerScore is the score being evaluated.
// Temperature T = max(1, s1/5) where s1 is the maximum of scores.
func Consistency(scores []int, winnerScore int) float64 {
	if len(scores) == 0 {
		return 100
	}
	if len(scores) == 1 {
		return 100
	}

	s1 := scores[0]
	for _, s := range scores[1:] {
		if s > s1 {
			s1 = s
		}
	}

	t := float64(s1) / 5
	if t < 1 {
		t = 1
	}

	var denom float64
	for _, s := range scores {
		denom += math.Exp(float64(s) / t)
	}
	if denom == 0 {
		return 100
	}

	c := 100 * math.Exp(float64(winnerScore)/t) / denom
	return math.Round(c*10) / 10
}
