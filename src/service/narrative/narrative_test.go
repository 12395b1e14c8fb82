package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

type stubSummarizer struct {
	text string
	err  error
}

func (s stubSummarizer) Name() string { return "stub" }

func (s stubSummarizer) Summarize(context.Context, Stats) (string, error) {
	return s.text, s.err
}

func repeatFindings(kind model.Kind, n int) []model.Finding {
	var out []model.Finding
	for i := 0; i < n; i++ {
		out = append(out, model.NewFinding("a.go", i+1, kind, "x"))
	}
	return out
}

func TestBuildStatsCounts(t *testing.T) {
	findings := append(
		repeatFindings(model.KindSyntaxError, 2),
		repeatFindings(model.KindDeepNesting, 3)...,
	)
	findings = append(findings, repeatFindings(model.KindLongLine, 1)...)

	metrics := []model.DebtMetric{
		{MetricName: "High Commit Frequency"},
	}

	stats := BuildStats(findings, metrics)

	assert.Equal(t, 6, stats.TotalFindings)
	assert.Equal(t, 2, stats.CriticalFindings)
	assert.Equal(t, 3, stats.HighFindings)
	assert.Equal(t, []string{"High Commit Frequency"}, stats.MetricNames)

	require.Len(t, stats.TopKinds, 3)
	assert.Equal(t, model.KindDeepNesting, stats.TopKinds[0].Kind)
	assert.Equal(t, 3, stats.TopKinds[0].Count)
	assert.Equal(t, model.KindSyntaxError, stats.TopKinds[1].Kind)
	assert.Equal(t, model.KindLongLine, stats.TopKinds[2].Kind)
}

func TestBuildStatsTopKindsTruncated(t *testing.T) {
	var findings []model.Finding
	for i, kind := range []model.Kind{
		model.KindLongFunction, model.KindTooManyParameters, model.KindDeepNesting,
		model.KindLargeFile, model.KindDebtComment, model.KindLongLine,
	} {
		findings = append(findings, repeatFindings(kind, i+1)...)
	}

	stats := BuildStats(findings, nil)
	require.Len(t, stats.TopKinds, 5)
	// The least frequent kind falls off the list
	for _, kc := range stats.TopKinds {
		assert.NotEqual(t, model.KindLongFunction, kc.Kind)
	}
}

func TestBuildStatsTieBreaksByKindName(t *testing.T) {
	findings := append(
		repeatFindings(model.KindLongLine, 2),
		repeatFindings(model.KindDeepNesting, 2)...,
	)

	stats := BuildStats(findings, nil)
	require.Len(t, stats.TopKinds, 2)
	assert.Equal(t, model.KindDeepNesting, stats.TopKinds[0].Kind)
	assert.Equal(t, model.KindLongLine, stats.TopKinds[1].Kind)
}

func TestFallbackDeterministic(t *testing.T) {
	stats := Stats{TotalFindings: 7, CriticalFindings: 1, HighFindings: 2}

	first, err := Fallback{}.Summarize(context.Background(), stats)
	require.NoError(t, err)
	second, err := Fallback{}.Summarize(context.Background(), stats)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "7 identified issues")
	assert.Contains(t, first, "1 critical and 2 high-priority")
}

func TestComposeUsesPrimary(t *testing.T) {
	got := Compose(context.Background(), stubSummarizer{text: "primary prose"}, Stats{})
	assert.Equal(t, "primary prose", got)
}

func TestComposeFallsBackOnError(t *testing.T) {
	stats := Stats{TotalFindings: 3}
	got := Compose(context.Background(), stubSummarizer{err: errors.New("api down")}, stats)
	assert.Contains(t, got, "3 identified issues")
}

func TestComposeFallsBackOnEmptyText(t *testing.T) {
	got := Compose(context.Background(), stubSummarizer{text: "   "}, Stats{TotalFindings: 1})
	assert.Contains(t, got, "1 identified issues")
}

func TestComposeNilPrimary(t *testing.T) {
	got := Compose(context.Background(), nil, Stats{})
	assert.Contains(t, got, "0 identified issues")
}
