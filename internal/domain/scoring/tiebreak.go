package scoring

import "github.com/michaelprinc/mcp-prompt-broker/internal/domain"

// Candidate is one profile's scoring outcome, used by Select and Consistency.
type Candidate struct {
	Profile domain.Profile
	Score   int
}

// Select implements §4.5 step 2-3: it filters out non-positive and
// disqualified candidates, then picks the argmax by score with the
// tie-break order (a) required-tag intersections, (b) default_score,
// (c) lexicographically smaller name. Candidates must already have Score
// populated via Score(); Select does not recompute it.
func Select(candidates []Candidate, m domain.EnhancedMetadata) (Candidate, []Candidate, bool) {
	eligible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score > 0 {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return Candidate{}, eligible, false
	}

	best := eligible[0]
	for _, c := range eligible[1:] {
		if better(c, best, m) {
			best = c
		}
	}
	return best, eligible, true
}

func better(a, b Candidate, m domain.EnhancedMetadata) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	ai, bi := RequiredTagIntersections(a.Profile, m), RequiredTagIntersections(b.Profile, m)
	if ai != bi {
		return ai > bi
	}
	if a.Profile.DefaultScore != b.Profile.DefaultScore {
		return a.Profile.DefaultScore > b.Profile.DefaultScore
	}
	return a.Profile.Name < b.Profile.Name
}
