package domain

import "time"

// RegistrySummary is the C3 Metadata Registry's aggregate view, returned by
// the get_registry_summary tool.
type RegistrySummary struct {
	TotalProfiles       int            `json:"total_profiles"`
	Domains             []string       `json:"domains"`
	Capabilities        []string       `json:"capabilities"`
	ProfilesByComplexity map[string]int `json:"profiles_by_complexity"`
	GeneratedAt         time.Time      `json:"generated_at"`
}

// TagMatch is one entry of a FindByCapability/FindByDomain result: a
// profile name and the confidence of the match (§4.3).
type TagMatch struct {
	Name       string  `json:"name"`
	MatchScore float64 `json:"match_score"`
}

const (
	MatchScoreExact           = 1.0
	MatchScoreSubstring       = 0.7
	MatchScoreKeywordWeight   = 0.5
)
