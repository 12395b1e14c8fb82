package report

import "github.com/Vaibhav17t/codebase-review/src/model"

// HealthScore maps findings to a bounded health score. Each finding
// subtracts its severity penalty from 100; the result is clamped to
// [0,100]. An empty set scores 100. The score depends only on the
// multi-set of severities, never on ordering.
func HealthScore(findings []model.Finding) int {
	penalty := 0
	for _, f := range findings {
		penalty += f.Severity.Penalty()
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}
	return score
}

// HealthStatus bands a score for display. The band is derived, never
// stored.
func HealthStatus(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "needs attention"
	default:
		return "critical"
	}
}
