package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaibhav17t/codebase-review/src/config"
	"github.com/Vaibhav17t/codebase-review/src/model"
)

func commitsOn(dates []string, messages []string) []Commit {
	var commits []Commit
	for i, msg := range messages {
		commits = append(commits, Commit{
			ID:      fmt.Sprintf("%040d", i),
			Author:  "dev",
			Date:    dates[i%len(dates)],
			Message: msg,
		})
	}
	return commits
}

func TestParseCommits(t *testing.T) {
	output := "abc123|Alice|2026-08-20|fix the parser\n" +
		"def456|Bob|2026-08-21|add feature|with pipe in message\n" +
		"malformed line without enough fields\n" +
		"789abc|Carol|2026-08-22|refactor scanner\n"

	commits := ParseCommits(output)
	require.Len(t, commits, 3)

	assert.Equal(t, "abc123", commits[0].ID)
	assert.Equal(t, "Alice", commits[0].Author)
	assert.Equal(t, "2026-08-20", commits[0].Date)
	assert.Equal(t, "fix the parser", commits[0].Message)

	// Pipes inside the subject stay in the message
	assert.Equal(t, "add feature|with pipe in message", commits[1].Message)
}

func TestParseCommitsEmpty(t *testing.T) {
	assert.Nil(t, ParseCommits(""))
	assert.Nil(t, ParseCommits("  \n  "))
}

func TestMetricsQuietHistory(t *testing.T) {
	// 15 commits over 3 days is frequency 5; 2 of 15 debt commits is
	// under the 20% ratio. Neither metric fires.
	messages := make([]string, 15)
	for i := range messages {
		messages[i] = "add feature"
	}
	messages[0] = "fix typo"
	messages[1] = "fix build"

	commits := commitsOn([]string{"2026-08-20", "2026-08-21", "2026-08-22"}, messages)
	assert.Empty(t, MetricsFromCommits(commits))
}

func TestMetricsDebtCommits(t *testing.T) {
	messages := make([]string, 15)
	for i := range messages {
		messages[i] = "add feature"
	}
	messages[0] = "fix typo"
	messages[1] = "Refactor the scanner"
	messages[2] = "remove HACK in parser"
	messages[3] = "temp workaround"

	commits := commitsOn([]string{"2026-08-20", "2026-08-21", "2026-08-22"}, messages)
	metrics := MetricsFromCommits(commits)

	require.Len(t, metrics, 1)
	m := metrics[0]
	assert.Equal(t, "Technical Debt Commits", m.MetricName)
	assert.Equal(t, 4.0, m.CurrentValue)
	assert.Equal(t, "concerning", m.Trend)
	assert.Equal(t, model.SeverityHigh, m.RiskLevel)
}

func TestMetricsCommitFrequency(t *testing.T) {
	messages := make([]string, 22)
	for i := range messages {
		messages[i] = "add feature"
	}

	commits := commitsOn([]string{"2026-08-20", "2026-08-21"}, messages)
	metrics := MetricsFromCommits(commits)

	require.Len(t, metrics, 1)
	m := metrics[0]
	assert.Equal(t, "High Commit Frequency", m.MetricName)
	assert.Equal(t, 11.0, m.CurrentValue)
	assert.Equal(t, "increasing", m.Trend)
	assert.Equal(t, model.SeverityMedium, m.RiskLevel)
}

func TestMetricsEmptyCommits(t *testing.T) {
	assert.Nil(t, MetricsFromCommits(nil))
}

func TestFrequencyExactThresholdDoesNotFire(t *testing.T) {
	messages := make([]string, 10)
	for i := range messages {
		messages[i] = "add feature"
	}

	// 10 commits in one day is exactly the threshold, not above it
	commits := commitsOn([]string{"2026-08-20"}, messages)
	assert.Empty(t, MetricsFromCommits(commits))
}

func TestDebtTrendsNonRepository(t *testing.T) {
	a := New(t.TempDir(), config.HistoryConfig{Enabled: true, LookbackDays: 30})
	assert.Nil(t, a.DebtTrends(context.Background()))
}
