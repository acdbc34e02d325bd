package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"high", "medium", "low"} {
		p, err := ParsePriority(word)
		require.NoError(t, err)
		assert.Equal(t, word, p.String())
	}

	_, err := ParsePriority("urgent")
	assert.ErrorContains(t, err, "unknown priority")
}

func TestParseStrength(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"required", "recommended", "optional"} {
		s, err := ParseStrength(word)
		require.NoError(t, err)
		assert.Equal(t, word, s.String())
	}

	_, err := ParseStrength("mandatory")
	assert.ErrorContains(t, err, "unknown strength")
}

func TestStrengthOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, StrengthRequired > StrengthRecommended)
	assert.True(t, StrengthRecommended > StrengthOptional)
}

func TestParseDependencyType(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"technical", "logical", "business"} {
		d, err := ParseDependencyType(word)
		require.NoError(t, err)
		assert.Equal(t, word, d.String())
	}

	_, err := ParseDependencyType("social")
	assert.ErrorContains(t, err, "unknown dependency type")
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"safest", "balanced", "fastest"} {
		s, err := ParseStrategy(word)
		require.NoError(t, err)
		assert.Equal(t, word, s.String())
	}

	_, err := ParseStrategy("yolo")
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestStrategyMinStrength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StrengthOptional, StrategySafest.MinStrength())
	assert.Equal(t, StrengthRecommended, StrategyBalanced.MinStrength())
	assert.Equal(t, StrengthRequired, StrategyFastest.MinStrength())
}
