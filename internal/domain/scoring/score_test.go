package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain/scoring"
)

func creativeBrainstormProfile() domain.Profile {
	return domain.Profile{
		Name:         "creative_brainstorm",
		DefaultScore: 1,
		KeywordWeights: map[string]int{
			"brainstorm": 5,
			"nápady":     4,
			"ideas":      4,
		},
	}
}

func TestScore_CzechBrainstormPrompt(t *testing.T) {
	p := creativeBrainstormProfile()
	m := domain.EnhancedMetadata{ParsedMetadata: domain.ParsedMetadata{
		Prompt: "potřebuji vymyslet nápady pro logo fitness aplikace",
	}}

	got := scoring.Score(p, m)
	assert.GreaterOrEqual(t, got, p.DefaultScore+4)
}

func TestScore_TechnicalDebugPrompt(t *testing.T) {
	p := domain.Profile{
		Name:         "technical_support",
		DefaultScore: 1,
		KeywordWeights: map[string]int{
			"debug":    5,
			"error":    4,
			"keyerror": 4,
		},
		DomainWeights: map[string]int{"engineering": 4},
	}
	m := domain.EnhancedMetadata{ParsedMetadata: domain.ParsedMetadata{
		Prompt: "debug my python script that throws keyerror on line 42",
		Domain: "engineering",
	}}

	got := scoring.Score(p, m)
	assert.Equal(t, p.DefaultScore+5+4+4+4, got)
}

func TestScore_NeverBelowDefaultWhenNotDisqualified(t *testing.T) {
	p := domain.Profile{Name: "x", DefaultScore: 3}
	m := domain.EnhancedMetadata{ParsedMetadata: domain.ParsedMetadata{Prompt: "anything at all"}}

	assert.False(t, scoring.Disqualified(p, m))
	assert.GreaterOrEqual(t, scoring.Score(p, m), p.DefaultScore)
}

func TestDisqualified_RequiredTagsDisjointFromMetadata(t *testing.T) {
	p := domain.Profile{
		Name:                "privacy_sensitive",
		RequiredContextTags: []string{"pii", "compliance"},
	}
	m := domain.EnhancedMetadata{ParsedMetadata: domain.ParsedMetadata{Topics: []string{"creative"}}}

	assert.True(t, scoring.Disqualified(p, m))
}

func TestDisqualified_OpensWhenTagIntersects(t *testing.T) {
	p := domain.Profile{
		Name:                "privacy_sensitive",
		RequiredContextTags: []string{"pii", "compliance"},
	}
	m := domain.EnhancedMetadata{ParsedMetadata: domain.ParsedMetadata{Topics: []string{"pii"}}}

	assert.False(t, scoring.Disqualified(p, m))
}

func TestDisqualified_NoRequiredTagsNeverDisqualifies(t *testing.T) {
	p := domain.Profile{Name: "general_default"}
	m := domain.EnhancedMetadata{}

	assert.False(t, scoring.Disqualified(p, m))
}

func TestRequiredTagIntersections_CountsMatches(t *testing.T) {
	p := domain.Profile{RequiredContextTags: []string{"pii", "compliance", "security"}}
	m := domain.EnhancedMetadata{ParsedMetadata: domain.ParsedMetadata{
		Topics:       []string{"pii"},
		Capabilities: []string{"compliance"},
	}}

	assert.Equal(t, 2, scoring.RequiredTagIntersections(p, m))
}
