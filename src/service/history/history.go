package history

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Vaibhav17t/codebase-review/src/config"
	"github.com/Vaibhav17t/codebase-review/src/model"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

// Promotion thresholds for history-derived metrics
const (
	commitFrequencyThreshold = 10.0
	debtCommitRatio          = 0.2
)

// debtKeywords mark commit messages that suggest remedial work
var debtKeywords = []string{
	"fix", "refactor", "cleanup", "debt", "hack", "workaround", "temp",
}

// Commit is one record of version-control history
type Commit struct {
	ID      string
	Author  string
	Date    string // YYYY-MM-DD
	Message string
}

// Analyzer mines git history for signals of rushed or remedial work
type Analyzer struct {
	repoPath string
	cfg      config.HistoryConfig
}

// New creates a history analyzer for a repository root
func New(repoPath string, cfg config.HistoryConfig) *Analyzer {
	return &Analyzer{repoPath: repoPath, cfg: cfg}
}

// DebtTrends extracts commits within the lookback window and derives
// debt metrics. Every failure mode (not a repository, git missing,
// timeout, no commits) degrades to an empty metric list with a logged
// diagnostic; history problems never abort an analysis run.
func (a *Analyzer) DebtTrends(ctx context.Context) []model.DebtMetric {
	if _, err := os.Stat(filepath.Join(a.repoPath, ".git")); err != nil {
		util.Warn("Not a git repository: %s", a.repoPath)
		return nil
	}

	commits, err := a.recentCommits(ctx)
	if err != nil {
		util.Warn("Git history unavailable: %v", err)
		return nil
	}

	return MetricsFromCommits(commits)
}

// recentCommits runs git log within a bounded wall-clock duration
func (a *Analyzer) recentCommits(ctx context.Context) ([]Commit, error) {
	since := time.Now().AddDate(0, 0, -a.cfg.LookbackDays).Format("2006-01-02")

	timeout := a.cfg.GitTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "log",
		"--since="+since, "--pretty=format:%H|%an|%ad|%s", "--date=short")
	cmd.Dir = a.repoPath

	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	return ParseCommits(string(output)), nil
}

// ParseCommits parses the pipe-delimited git log output. Malformed
// lines are dropped.
func ParseCommits(output string) []Commit {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil
	}

	var commits []Commit
	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			continue
		}
		commits = append(commits, Commit{
			ID:      parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Message: parts[3],
		})
	}
	return commits
}

// MetricsFromCommits derives debt metrics from a commit list. A metric
// is emitted only when its statistic crosses the threshold; an empty
// commit list yields no metrics.
func MetricsFromCommits(commits []Commit) []model.DebtMetric {
	if len(commits) == 0 {
		return nil
	}

	var metrics []model.DebtMetric

	if freq := commitFrequency(commits); freq > commitFrequencyThreshold {
		metrics = append(metrics, model.DebtMetric{
			MetricName:        "High Commit Frequency",
			CurrentValue:      freq,
			Trend:             "increasing",
			RiskLevel:         model.SeverityMedium,
			ImpactDescription: "Rapid commits may indicate rushed development",
		})
	}

	if debt := countDebtCommits(commits); float64(debt) > float64(len(commits))*debtCommitRatio {
		metrics = append(metrics, model.DebtMetric{
			MetricName:        "Technical Debt Commits",
			CurrentValue:      float64(debt),
			Trend:             "concerning",
			RiskLevel:         model.SeverityHigh,
			ImpactDescription: "High ratio of fix/refactor commits suggests accumulating debt",
		})
	}

	return metrics
}

// commitFrequency is total commits divided by distinct commit dates
func commitFrequency(commits []Commit) float64 {
	dates := make(map[string]bool)
	for _, c := range commits {
		if c.Date != "" {
			dates[c.Date] = true
		}
	}

	distinct := len(dates)
	if distinct < 1 {
		distinct = 1
	}
	return float64(len(commits)) / float64(distinct)
}

func countDebtCommits(commits []Commit) int {
	count := 0
	for _, c := range commits {
		message := strings.ToLower(c.Message)
		for _, keyword := range debtKeywords {
			if strings.Contains(message, keyword) {
				count++
				break
			}
		}
	}
	return count
}
