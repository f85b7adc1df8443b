package analyser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelprinc/mcp-prompt-broker/internal/application/analyser"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

func TestAnalyse_EmptyPromptBoundaryBehaviour(t *testing.T) {
	a := analyser.New(domain.DefaultRouterConfig())
	m := a.Analyse("", nil)

	assert.Equal(t, domain.IntentStatement, m.Intent)
	assert.Empty(t, m.Domain)
	assert.Empty(t, m.Topics)
	assert.Equal(t, domain.ComplexitySimple, m.Complexity)
	assert.Equal(t, 100, m.SafetyScore)
}

func TestAnalyse_DetectsBugReportIntentAndEngineeringDomain(t *testing.T) {
	a := analyser.New(domain.DefaultRouterConfig())
	m := a.Analyse("Debug my Python script that throws KeyError on line 42", nil)

	assert.Equal(t, domain.IntentBugReport, m.Intent)
	assert.Equal(t, "engineering", m.Domain)
	assert.Contains(t, m.Topics, "python")
	assert.Contains(t, m.Topics, "debugging")
}

func TestAnalyse_DetectsCzechBrainstormKeywords(t *testing.T) {
	a := analyser.New(domain.DefaultRouterConfig())
	m := a.Analyse("Potřebuji vymyslet nápady pro logo fitness aplikace", nil)

	assert.Equal(t, domain.IntentBrainstorm, m.Intent)
	assert.Equal(t, "creative", m.Domain)
}

func TestAnalyse_DetectsPIISensitivity(t *testing.T) {
	a := analyser.New(domain.DefaultRouterConfig())
	open := a.Analyse("Write a haiku", nil)
	assert.Equal(t, domain.SensitivityLow, open.Sensitivity)

	sensitive := a.Analyse("Process this patient SSN record", nil)
	assert.Equal(t, domain.SensitivityHigh, sensitive.Sensitivity)
	assert.Contains(t, sensitive.Topics, "pii")
}

func TestAnalyse_WordCountThresholdsDriveComplexity(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	a := analyser.New(cfg)

	medium := a.Analyse(repeatWords(cfg.ComplexityWordMedium), nil)
	assert.Equal(t, domain.ComplexityMedium, medium.Complexity)

	belowMedium := a.Analyse(repeatWords(cfg.ComplexityWordMedium-1), nil)
	assert.Equal(t, domain.ComplexitySimple, belowMedium.Complexity)

	aboveMediumStillMedium := a.Analyse(repeatWords(cfg.ComplexityWordMedium+1), nil)
	assert.Equal(t, domain.ComplexityMedium, aboveMediumStillMedium.Complexity)

	high := a.Analyse(repeatWords(cfg.ComplexityWordHigh), nil)
	assert.Equal(t, domain.ComplexityComplex, high.Complexity)
}

func TestAnalyse_ComplexitySignalForcesComplexRegardlessOfWordCount(t *testing.T) {
	a := analyser.New(domain.DefaultRouterConfig())
	m := a.Analyse("plan the enterprise architecture migration", nil)
	assert.Equal(t, domain.ComplexityComplex, m.Complexity)
}

func TestAnalyse_OverridesTakePrecedenceOverParsedValues(t *testing.T) {
	a := analyser.New(domain.DefaultRouterConfig())
	m := a.Analyse("Write a haiku", map[string]interface{}{
		"domain":      "compliance",
		"priority":    "high",
		"context_tags": []interface{}{"pii"},
	})

	assert.Equal(t, "compliance", m.Domain)
	assert.Equal(t, "high", m.Priority)
	assert.Contains(t, m.ContextTags, "pii")
	assert.True(t, m.AllTags()["pii"])
}

func TestAnalyse_UnknownOverrideKeysAreIgnored(t *testing.T) {
	a := analyser.New(domain.DefaultRouterConfig())
	m := a.Analyse("Write a haiku", map[string]interface{}{"not_a_real_key": "value"})
	assert.Empty(t, m.Priority)
}

func repeatWords(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += " "
		}
		out += "word"
	}
	return out
}
