package report

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

func findingWithSeverity(kind model.Kind) model.Finding {
	return model.NewFinding("main.go", 1, kind, "test finding")
}

func TestHealthScoreEmpty(t *testing.T) {
	assert.Equal(t, 100, HealthScore(nil))
	assert.Equal(t, 100, HealthScore([]model.Finding{}))
}

func TestHealthScorePenalties(t *testing.T) {
	tests := []struct {
		name     string
		findings []model.Finding
		want     int
	}{
		{
			name:     "one low",
			findings: []model.Finding{findingWithSeverity(model.KindLongLine)},
			want:     99,
		},
		{
			name:     "one medium",
			findings: []model.Finding{findingWithSeverity(model.KindLongFunction)},
			want:     98,
		},
		{
			name:     "one high",
			findings: []model.Finding{findingWithSeverity(model.KindDeepNesting)},
			want:     95,
		},
		{
			name:     "one critical",
			findings: []model.Finding{findingWithSeverity(model.KindSyntaxError)},
			want:     90,
		},
		{
			name: "mixed severities",
			findings: []model.Finding{
				findingWithSeverity(model.KindSyntaxError),  // 10
				findingWithSeverity(model.KindDeepNesting),  // 5
				findingWithSeverity(model.KindLongFunction), // 2
				findingWithSeverity(model.KindDebtComment),  // 1
			},
			want: 82,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthScore(tt.findings))
		})
	}
}

func TestHealthScoreClampedAtZero(t *testing.T) {
	var findings []model.Finding
	for i := 0; i < 50; i++ {
		findings = append(findings, findingWithSeverity(model.KindSyntaxError))
	}

	// 50 criticals would be penalty 500; score stays at the floor
	assert.Equal(t, 0, HealthScore(findings))
}

func TestHealthScoreBounds(t *testing.T) {
	kinds := []model.Kind{
		model.KindLongFunction, model.KindTooManyParameters, model.KindDeepNesting,
		model.KindLargeFile, model.KindDebtComment, model.KindLongLine, model.KindSyntaxError,
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		var findings []model.Finding
		for i := 0; i < rng.Intn(40); i++ {
			findings = append(findings, findingWithSeverity(kinds[rng.Intn(len(kinds))]))
		}

		score := HealthScore(findings)
		require.GreaterOrEqual(t, score, 0)
		require.LessOrEqual(t, score, 100)
	}
}

func TestHealthScoreMonotone(t *testing.T) {
	kinds := []model.Kind{
		model.KindLongLine, model.KindLongFunction, model.KindDeepNesting, model.KindSyntaxError,
	}

	var findings []model.Finding
	previous := HealthScore(findings)

	for i := 0; i < 30; i++ {
		findings = append(findings, findingWithSeverity(kinds[i%len(kinds)]))
		score := HealthScore(findings)
		require.LessOrEqual(t, score, previous, "adding a finding must never increase the score")
		previous = score
	}
}

func TestHealthScoreOrderInvariant(t *testing.T) {
	findings := []model.Finding{
		findingWithSeverity(model.KindSyntaxError),
		findingWithSeverity(model.KindDeepNesting),
		findingWithSeverity(model.KindLongFunction),
		findingWithSeverity(model.KindLongLine),
		findingWithSeverity(model.KindLargeFile),
	}

	want := HealthScore(findings)

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]model.Finding, len(findings))
		copy(shuffled, findings)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, HealthScore(shuffled))
	}
}

func TestHealthStatusBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "excellent"},
		{90, "excellent"},
		{89, "good"},
		{70, "good"},
		{69, "needs attention"},
		{50, "needs attention"},
		{49, "critical"},
		{0, "critical"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthStatus(tt.score), "score %d", tt.score)
	}
}
