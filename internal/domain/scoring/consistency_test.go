package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain/scoring"
)

func TestConsistency_SingleCandidateIsFullyConsistent(t *testing.T) {
	assert.Equal(t, 100.0, scoring.Consistency([]int{7}, 7))
}

func TestConsistency_IsWithinZeroToHundred(t *testing.T) {
	got := scoring.Consistency([]int{10, 9, 2}, 10)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestConsistency_HigherMarginGivesHigherConsistency(t *testing.T) {
	closeRace := scoring.Consistency([]int{10, 9}, 10)
	landslide := scoring.Consistency([]int{10, 1}, 10)
	assert.Greater(t, landslide, closeRace)
}
