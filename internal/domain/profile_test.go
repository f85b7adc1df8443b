package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

func TestProfile_Validate_RejectsShortName(t *testing.T) {
	p := domain.Profile{Name: "ab", Description: "a description long enough to pass"}
	assert.Error(t, p.Validate())
}

func TestProfile_Validate_RejectsUppercaseName(t *testing.T) {
	p := domain.Profile{Name: "Invalid_Name", Description: "a description long enough to pass"}
	assert.Error(t, p.Validate())
}

func TestProfile_Validate_RejectsShortDescription(t *testing.T) {
	p := domain.Profile{Name: "valid_name", Description: "too short"}
	assert.Error(t, p.Validate())
}

func TestProfile_Validate_AcceptsWellFormedProfile(t *testing.T) {
	p := domain.Profile{Name: "valid_profile_name", Description: "A sufficiently descriptive sentence."}
	assert.NoError(t, p.Validate())
}

func TestProfile_WithDefaults_FillsMissingFields(t *testing.T) {
	p := domain.Profile{Name: "x", Description: "a description long enough to pass"}.WithDefaults()

	assert.Equal(t, "1.0.0", p.Version)
	assert.Equal(t, domain.ComplexityTierSimple, p.ComplexityTier)
	assert.Equal(t, 1, p.DefaultScore)
}

func TestProfile_WithDefaults_LowercasesKeywordWeightKeys(t *testing.T) {
	p := domain.Profile{
		KeywordWeights: map[string]int{"DEBUG": 5, "Error": 3},
	}.WithDefaults()

	assert.Equal(t, 5, p.KeywordWeights["debug"])
	assert.Equal(t, 3, p.KeywordWeights["error"])
}

func TestProfile_IsComplexVariant(t *testing.T) {
	assert.True(t, domain.Profile{Name: "python_code_generation_complex"}.IsComplexVariant())
	assert.False(t, domain.Profile{Name: "python_code_generation"}.IsComplexVariant())
	assert.False(t, domain.Profile{Name: "_complex"}.IsComplexVariant())
}

func TestProfile_ComplexSiblingName(t *testing.T) {
	assert.Equal(t, "python_code_generation_complex", domain.Profile{Name: "python_code_generation"}.ComplexSiblingName())
	assert.Equal(t, "python_code_generation_complex", domain.Profile{Name: "python_code_generation_complex"}.ComplexSiblingName())
}
