package narrative

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Vaibhav17t/codebase-review/src/model"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

// KindCount pairs a finding kind with its occurrence count
type KindCount struct {
	Kind  model.Kind
	Count int
}

// Stats are the aggregate counts a summarizer works from. No raw
// findings are passed; summaries are built from aggregates only.
type Stats struct {
	TotalFindings    int
	CriticalFindings int
	HighFindings     int
	TopKinds         []KindCount
	MetricNames      []string
}

// BuildStats aggregates findings and metrics into summarizer input.
// TopKinds holds the five most frequent kinds, most frequent first.
func BuildStats(findings []model.Finding, metrics []model.DebtMetric) Stats {
	stats := Stats{TotalFindings: len(findings)}

	kindCounts := make(map[model.Kind]int)
	for _, f := range findings {
		kindCounts[f.Kind]++
		switch f.Severity {
		case model.SeverityCritical:
			stats.CriticalFindings++
		case model.SeverityHigh:
			stats.HighFindings++
		}
	}

	for kind, count := range kindCounts {
		stats.TopKinds = append(stats.TopKinds, KindCount{Kind: kind, Count: count})
	}
	sort.Slice(stats.TopKinds, func(i, j int) bool {
		if stats.TopKinds[i].Count != stats.TopKinds[j].Count {
			return stats.TopKinds[i].Count > stats.TopKinds[j].Count
		}
		return stats.TopKinds[i].Kind < stats.TopKinds[j].Kind
	})
	if len(stats.TopKinds) > 5 {
		stats.TopKinds = stats.TopKinds[:5]
	}

	for _, m := range metrics {
		stats.MetricNames = append(stats.MetricNames, m.MetricName)
	}

	return stats
}

// Summarizer turns aggregate statistics into executive-summary prose
type Summarizer interface {
	// Name returns the summarizer name
	Name() string

	// Summarize produces summary prose from aggregate statistics
	Summarize(ctx context.Context, stats Stats) (string, error)
}

// Compose produces a summary from the primary summarizer, degrading to
// the deterministic fallback when the primary is absent or fails. It
// always returns usable prose.
func Compose(ctx context.Context, primary Summarizer, stats Stats) string {
	if primary != nil {
		text, err := primary.Summarize(ctx, stats)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			util.Warn("Summarizer %s failed, using fallback: %v", primary.Name(), err)
		}
	}

	text, _ := Fallback{}.Summarize(ctx, stats)
	return text
}

// Fallback is the deterministic templated summarizer. It needs no
// external service and never fails.
type Fallback struct{}

// Name returns the summarizer name
func (Fallback) Name() string {
	return "fallback"
}

// Summarize renders the fixed three-paragraph template from aggregate
// counts
func (Fallback) Summarize(_ context.Context, stats Stats) (string, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "This codebase contains %d identified issues requiring attention. ", stats.TotalFindings)
	fmt.Fprintf(&sb, "With %d critical and %d high-priority items, ", stats.CriticalFindings, stats.HighFindings)
	sb.WriteString("immediate action is recommended to prevent accumulating technical debt.\n\n")

	sb.WriteString("The most common issues include code complexity, maintainability concerns, and ")
	sb.WriteString("potential reliability risks. These patterns suggest the need for systematic ")
	sb.WriteString("refactoring and improved development practices.\n\n")

	sb.WriteString("Recommendations: 1) Address all critical issues immediately, 2) Implement ")
	sb.WriteString("automated code quality checks, 3) Schedule regular refactoring sprints to ")
	sb.WriteString("manage debt systematically.")

	return sb.String(), nil
}
