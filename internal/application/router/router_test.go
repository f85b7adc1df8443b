package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelprinc/mcp-prompt-broker/internal/application/analyser"
	"github.com/michaelprinc/mcp-prompt-broker/internal/application/router"
	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

func scenarioCatalog() *domain.Catalog {
	profiles := []domain.Profile{
		{
			Name:           "creative_brainstorm",
			DefaultScore:   1,
			Domains:        []string{"creative"},
			KeywordWeights: map[string]int{"brainstorm": 5, "nápady": 4, "vymyslet": 4, "ideas": 4},
		},
		{
			Name:           "technical_support",
			DefaultScore:   1,
			Domains:        []string{"engineering"},
			KeywordWeights: map[string]int{"debug": 5, "error": 4, "keyerror": 4},
			DomainWeights:  map[string]int{"engineering": 4},
		},
		{
			Name:         "general_default",
			DefaultScore: 5,
			Fallback:     true,
		},
		{
			Name:                "privacy_sensitive",
			DefaultScore:        2,
			RequiredContextTags: []string{"pii", "compliance"},
			KeywordWeights:      map[string]int{"ssn": 4},
		},
		{
			Name:           "python_code_generation",
			DefaultScore:   1,
			Domains:        []string{"engineering"},
			KeywordWeights: map[string]int{"python": 5, "script": 3},
		},
		{
			Name:           "python_code_generation_complex",
			DefaultScore:   1,
			Domains:        []string{"engineering"},
			KeywordWeights: map[string]int{"python": 5, "script": 3},
		},
	}
	return domain.NewCatalog(profiles, nil, nil)
}

func TestRoute_CreativeCzechPromptMatchesBrainstormProfile(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	a := analyser.New(cfg)
	r := router.New(cfg)
	c := scenarioCatalog()

	m := a.Analyse("Potřebuji vymyslet nápady pro logo fitness aplikace", nil)
	result, err := r.Route(c, m)

	require.NoError(t, err)
	assert.Equal(t, "creative_brainstorm", result.Profile.Name)
	assert.Equal(t, domain.ReasonMatched, result.Reason)
	assert.GreaterOrEqual(t, result.Score, 1+4)
	assert.Greater(t, result.Consistency, 50.0)
}

func TestRoute_TechnicalDebugPromptMatchesTechnicalSupport(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	a := analyser.New(cfg)
	r := router.New(cfg)
	c := scenarioCatalog()

	m := a.Analyse("Debug my Python script that throws KeyError on line 42", nil)
	result, err := r.Route(c, m)

	require.NoError(t, err)
	assert.Equal(t, "technical_support", result.Profile.Name)
}

func TestRoute_NoKeywordMatchFallsBackToGeneralDefault(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	a := analyser.New(cfg)
	r := router.New(cfg)
	c := scenarioCatalog()

	m := a.Analyse("Hello", nil)
	result, err := r.Route(c, m)

	require.NoError(t, err)
	assert.Equal(t, "general_default", result.Profile.Name)
	assert.Equal(t, domain.ReasonFallback, result.Reason)
	assert.Equal(t, 100.0, result.Consistency)
}

func TestRoute_RequiredTagGateDisqualifiesPrivacyProfileWithoutPII(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	a := analyser.New(cfg)
	r := router.New(cfg)
	c := scenarioCatalog()

	m := a.Analyse("Write a haiku", nil)
	result, err := r.Route(c, m)

	require.NoError(t, err)
	assert.NotEqual(t, "privacy_sensitive", result.Profile.Name)
}

func TestRoute_RequiredTagGateOpensWhenPIIDetected(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	a := analyser.New(cfg)
	r := router.New(cfg)
	c := scenarioCatalog()

	m := a.Analyse("Process this patient SSN record", nil)
	result, err := r.Route(c, m)

	require.NoError(t, err)
	assert.Equal(t, "privacy_sensitive", result.Profile.Name)
}

func TestRoute_ComplexityUpgradeSwitchesToComplexSibling(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	a := analyser.New(cfg)
	r := router.New(cfg)
	c := scenarioCatalog()

	prompt := "plan the enterprise architecture migration for this python script"
	m := a.Analyse(prompt, nil)
	result, err := r.Route(c, m)

	require.NoError(t, err)
	assert.Equal(t, "python_code_generation_complex", result.Profile.Name)
	assert.Equal(t, domain.ReasonUpgradedToComplex, result.Reason)
}

func TestRoute_ProfileNameOverrideForcesSelection(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	r := router.New(cfg)
	c := scenarioCatalog()

	m := domain.EnhancedMetadata{ProfileNameOverride: "general_default"}
	result, err := r.Route(c, m)

	require.NoError(t, err)
	assert.Equal(t, "general_default", result.Profile.Name)
	assert.Equal(t, domain.ReasonForcedByOverride, result.Reason)
}

func TestRoute_UnknownOverrideNameIsNoMatchingProfile(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	r := router.New(cfg)
	c := scenarioCatalog()

	m := domain.EnhancedMetadata{ProfileNameOverride: "does_not_exist"}
	_, err := r.Route(c, m)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNoMatchingProfile))
}

func TestRoute_NoFallbackAndNoMatchReturnsNoMatchingProfile(t *testing.T) {
	cfg := domain.DefaultRouterConfig()
	r := router.New(cfg)
	c := domain.NewCatalog([]domain.Profile{{Name: "only_profile", DefaultScore: 0}}, nil, nil)

	_, err := r.Route(c, domain.EnhancedMetadata{})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNoMatchingProfile))
}
