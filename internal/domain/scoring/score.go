// Package scoring implements the Router's pure scoring math (§4.5): it has
// no I/O and operates only on domain.Profile and domain.EnhancedMetadata, so
// it can be exercised directly by tests without any catalog or filesystem.
package scoring

import (
	"strings"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// Score computes score(P, M) as defined in §4.5. It does not apply the
// required-tag disqualification gate; callers check Disqualified first.
func Score(p domain.Profile, m domain.EnhancedMetadata) int {
	total := p.DefaultScore

	lowerPrompt := strings.ToLower(m.Prompt)
	for kw, w := range p.KeywordWeights {
		if strings.Contains(lowerPrompt, kw) {
			total += w
		}
	}

	if m.Domain != "" {
		if w, ok := p.DomainWeights[m.Domain]; ok {
			total += w
		}
	}
	if w, ok := p.ComplexityWeights[string(m.Complexity)]; ok {
		total += w
	}
	if m.Priority != "" {
		if w, ok := p.PriorityWeights[m.Priority]; ok {
			total += w
		}
	}

	return total
}

// Disqualified reports whether P's required_context_tags exclude it from
// selection against M (§4.5 disqualification gate).
func Disqualified(p domain.Profile, m domain.EnhancedMetadata) bool {
	if len(p.RequiredContextTags) == 0 {
		return false
	}
	tags := m.AllTags()
	for _, rt := range p.RequiredContextTags {
		if tags[rt] {
			return false
		}
	}
	return true
}

// RequiredTagIntersections counts how many of P's required_context_tags
// intersect M's derived tags; used as the first tie-break criterion.
func RequiredTagIntersections(p domain.Profile, m domain.EnhancedMetadata) int {
	tags := m.AllTags()
	n := 0
	for _, rt := range p.RequiredContextTags {
		if tags[rt] {
			n++
		}
	}
	return n
}
