package scoring

import "github.com/michaelprinc/mcp-prompt-broker/internal/domain"

// PrefersComplex implements the §4.5 complexity-upgrade trigger condition:
// M.complexity is already "complex", or M.complexity is "medium" and the
// word count clears MCP_COMPLEXITY_PREFER_THRESHOLD.
func PrefersComplex(m domain.EnhancedMetadata, cfg domain.RouterConfig) bool {
	if m.Complexity == domain.ComplexityComplex {
		return true
	}
	return m.Complexity == domain.ComplexityMedium && m.WordCount >= cfg.ComplexityPreferThreshold
}
