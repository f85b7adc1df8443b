// Package registry implements the Metadata Registry (C3): a set of pure
// aggregate views over a *domain.Catalog snapshot. It holds no state of its
// own and is rebuilt fresh from whatever catalog the caller passes in.
package registry

import (
	"sort"
	"strings"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// FindByCapability returns every profile whose capabilities, capability
// substrings, or keyword-weight keys match cap, scored and ordered per §4.3.
func FindByCapability(c *domain.Catalog, cap string) []domain.TagMatch {
	return find(c, cap, func(p domain.Profile) []string { return p.Capabilities })
}

// FindByDomain is the domain-tag analogue of FindByCapability.
func FindByDomain(c *domain.Catalog, dom string) []domain.TagMatch {
	return find(c, dom, func(p domain.Profile) []string { return p.Domains })
}

func find(c *domain.Catalog, needle string, tagsOf func(domain.Profile) []string) []domain.TagMatch {
	lowerNeedle := strings.ToLower(needle)
	var matches []domain.TagMatch

	for _, p := range c.All() {
		score, ok := matchScore(p, lowerNeedle, tagsOf)
		if !ok {
			continue
		}
		matches = append(matches, domain.TagMatch{Name: p.Name, MatchScore: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Name < matches[j].Name
	})
	return matches
}

func matchScore(p domain.Profile, lowerNeedle string, tagsOf func(domain.Profile) []string) (float64, bool) {
	for _, tag := range tagsOf(p) {
		if tag == lowerNeedle {
			return domain.MatchScoreExact, true
		}
	}
	for _, tag := range tagsOf(p) {
		if strings.Contains(strings.ToLower(tag), lowerNeedle) {
			return domain.MatchScoreSubstring, true
		}
	}
	for kw := range p.KeywordWeights {
		if strings.Contains(kw, lowerNeedle) {
			return domain.MatchScoreKeywordWeight, true
		}
	}
	return 0, false
}

// Summarize builds the get_registry_summary payload.
func Summarize(c *domain.Catalog) domain.RegistrySummary {
	domains := map[string]bool{}
	capabilities := map[string]bool{}
	byComplexity := map[string]int{}

	for _, p := range c.All() {
		for _, d := range p.Domains {
			domains[d] = true
		}
		for _, cap := range p.Capabilities {
			capabilities[cap] = true
		}
		byComplexity[string(p.ComplexityTier)]++
	}

	return domain.RegistrySummary{
		TotalProfiles:        len(c.All()),
		Domains:              sortedKeys(domains),
		Capabilities:          sortedKeys(capabilities),
		ProfilesByComplexity: byComplexity,
		GeneratedAt:          c.GeneratedAt(),
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
