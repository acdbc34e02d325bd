package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/plangridgo/internal/cycles"
	"github.com/vk/plangridgo/internal/model"
	"github.com/vk/plangridgo/internal/planner"
)

func samplePlan() *Plan {
	return &Plan{
		Roadmap:      "roadmap/",
		FeatureCount: 3,
		Cycles: []cycles.Report{
			{Cycle: []string{"x", "y"}, Severity: cycles.SeverityHigh, BreakFrom: "y", BreakTo: "x"},
		},
		Result: planner.Result{
			Strategy:     model.StrategyBalanced,
			BuildOrder:   []string{"a", "c", "b"},
			Groups:       []planner.Group{{Features: []string{"a", "c"}, EstimatedTime: 3}, {Features: []string{"b"}, EstimatedTime: 5}},
			CriticalPath: []string{"a", "b"},
			Notes:        "3 features in 2 groups, estimated total time 8",
		},
		QuickWins: []string{"a", "c"},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, samplePlan(), FormatText))
	out := buf.String()

	assert.Contains(t, out, "balanced strategy, 3 features")
	assert.Contains(t, out, "[high] x -> y; suggest breaking y -> x")
	assert.Contains(t, out, "1. a, c (est. 3)")
	assert.Contains(t, out, "Build order: a -> c -> b")
	assert.Contains(t, out, "Critical path: a -> b")
	assert.Contains(t, out, "Quick wins: a, c")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, samplePlan(), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "roadmap/", decoded["roadmap"])
	assert.EqualValues(t, 3, decoded["feature_count"])

	planObj, ok := decoded["plan"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "balanced", planObj["strategy"], "strategy renders as its word, not a number")
	assert.Equal(t, []any{"a", "c", "b"}, planObj["build_order"])

	cyclesArr, ok := decoded["cycles"].([]any)
	require.True(t, ok)
	first := cyclesArr[0].(map[string]any)
	assert.Equal(t, "high", first["severity"])
	assert.Equal(t, "y", first["suggested_break_from"])
}

func TestRenderJSONOmitsEmptySections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	plan := &Plan{Result: planner.Result{Strategy: model.StrategySafest, Notes: "no features to plan"}}
	require.NoError(t, Render(&buf, plan, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotContains(t, decoded, "cycles")
	assert.NotContains(t, decoded, "quick_wins")
	assert.NotContains(t, decoded, "roadmap")
}
