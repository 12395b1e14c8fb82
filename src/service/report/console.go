package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

var (
	criticalColor = color.New(color.FgRed, color.Bold).SprintFunc()
	highColor     = color.New(color.FgRed).SprintFunc()
	mediumColor   = color.New(color.FgYellow).SprintFunc()
	lowColor      = color.New(color.FgCyan).SprintFunc()
	headerColor   = color.New(color.FgBlue, color.Bold).SprintFunc()
	goodColor     = color.New(color.FgGreen).SprintFunc()
)

func severityColor(s model.Severity) func(a ...interface{}) string {
	switch s {
	case model.SeverityCritical:
		return criticalColor
	case model.SeverityHigh:
		return highColor
	case model.SeverityMedium:
		return mediumColor
	default:
		return lowColor
	}
}

// WriteConsole renders the snapshot as a terminal report: summary
// statistics, health score, per-kind findings (top N each), git
// metrics and static recommendations.
func WriteConsole(w io.Writer, snap *Snapshot, topN int) {
	if topN < 1 {
		topN = 3
	}

	rule := strings.Repeat("=", 80)
	thinRule := strings.Repeat("-", 80)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, headerColor(fmt.Sprintf("CODEBASE REVIEW REPORT - %s", snap.ProjectName)))
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nSUMMARY STATISTICS")
	fmt.Fprintf(w, "   Total Issues: %d\n", snap.TotalFindings())
	fmt.Fprintf(w, "   Critical: %s\n", criticalColor(snap.SeverityCounts[model.SeverityCritical]))
	fmt.Fprintf(w, "   High:     %s\n", highColor(snap.SeverityCounts[model.SeverityHigh]))
	fmt.Fprintf(w, "   Medium:   %s\n", mediumColor(snap.SeverityCounts[model.SeverityMedium]))
	fmt.Fprintf(w, "   Low:      %s\n", lowColor(snap.SeverityCounts[model.SeverityLow]))

	fmt.Fprintf(w, "\nHEALTH SCORE: %d/100\n", snap.HealthScore)
	status := snap.HealthStatus
	if snap.HealthScore >= 70 {
		fmt.Fprintf(w, "   Status: %s\n", goodColor(status))
	} else if snap.HealthScore >= 50 {
		fmt.Fprintf(w, "   Status: %s\n", mediumColor(status))
	} else {
		fmt.Fprintf(w, "   Status: %s\n", criticalColor(status))
	}

	if snap.Summary != "" {
		fmt.Fprintln(w, "\nEXECUTIVE SUMMARY")
		fmt.Fprintln(w, thinRule)
		fmt.Fprintln(w, snap.Summary)
	}

	if len(snap.Groups) > 0 {
		fmt.Fprintln(w, "\nDETAILED ISSUES")
		fmt.Fprintln(w, thinRule)

		for _, group := range snap.Groups {
			fmt.Fprintf(w, "\n%s (%d instances)\n", headerColor(KindTitle(group.Kind)), group.Total)

			shown := group.Top
			if len(shown) > topN {
				shown = shown[:topN]
			}

			for i, f := range shown {
				paint := severityColor(f.Severity)
				fmt.Fprintf(w, "   %d. %s %s\n", i+1, paint(severityTag(f.Severity)), f.Description)
				fmt.Fprintf(w, "      %s:%d\n", f.FilePath, f.LineNumber)
				fmt.Fprintf(w, "      Suggestion: %s\n", f.SuggestedFix)
				fmt.Fprintf(w, "      Confidence: %.0f%%\n", f.Confidence*100)
			}

			if rest := group.Total - len(shown); rest > 0 {
				fmt.Fprintf(w, "      ... and %d more instances\n", rest)
			}
		}
	}

	if len(snap.Metrics) > 0 {
		fmt.Fprintln(w, "\nGIT TREND ANALYSIS")
		fmt.Fprintln(w, thinRule)
		for _, m := range snap.Metrics {
			paint := severityColor(m.RiskLevel)
			fmt.Fprintf(w, "   %s %s\n", paint(severityTag(m.RiskLevel)), m.MetricName)
			fmt.Fprintf(w, "      %s\n", m.ImpactDescription)
			fmt.Fprintf(w, "      Current Value: %.1f\n", m.CurrentValue)
		}
	}

	writeRecommendations(w, snap, thinRule)

	fmt.Fprintln(w, "\n"+rule)
}

func writeRecommendations(w io.Writer, snap *Snapshot, thinRule string) {
	fmt.Fprintln(w, "\nRECOMMENDATIONS")
	fmt.Fprintln(w, thinRule)

	n := 1
	if snap.SeverityCounts[model.SeverityCritical] > 0 {
		fmt.Fprintf(w, "   %d. URGENT: Address all critical issues immediately\n", n)
		fmt.Fprintln(w, "      These issues may cause system failures or security vulnerabilities")
		n++
	}

	if snap.SeverityCounts[model.SeverityHigh] > 0 {
		fmt.Fprintf(w, "   %d. HIGH PRIORITY: Schedule refactoring for high-priority issues\n", n)
		fmt.Fprintln(w, "      These issues significantly impact maintainability")
		n++
	}

	if snap.TotalFindings() > 20 {
		fmt.Fprintf(w, "   %d. SYSTEMATIC: Implement automated code quality checks\n", n)
		fmt.Fprintln(w, "      Consider pre-commit hooks, linting, and CI quality gates")
		n++
	}

	for _, group := range snap.Groups {
		if group.Kind == model.KindDebtComment && group.Total > 5 {
			fmt.Fprintf(w, "   %d. DEBT TRACKING: Address accumulated TODO/FIXME comments\n", n)
			fmt.Fprintln(w, "      These represent acknowledged but unresolved technical debt")
			n++
			break
		}
	}

	if n == 1 {
		fmt.Fprintln(w, "   No immediate action required. Keep monitoring debt regularly.")
	}
}
