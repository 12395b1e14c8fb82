package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Vaibhav17t/codebase-review/src/config"
	"github.com/Vaibhav17t/codebase-review/src/model"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders a snapshot in the specified format
func (g *Generator) Generate(snap *Snapshot, format string) (string, error) {
	util.Debug("Generating report in %s format (%d findings)", format, len(snap.Findings))
	switch format {
	case "json":
		return g.generateJSON(snap)
	case "markdown", "md":
		return g.generateMarkdown(snap)
	case "html":
		return renderHTML(snap)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(snap *Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(snap *Snapshot) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Technical Debt Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", snap.ProjectName))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", snap.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total Issues:** %d\n", snap.TotalFindings()))
	sb.WriteString(fmt.Sprintf("- **Health Score:** %d/100 (%s)\n\n", snap.HealthScore, snap.HealthStatus))

	if snap.Summary != "" {
		sb.WriteString("### Executive Summary\n\n")
		sb.WriteString(snap.Summary)
		sb.WriteString("\n\n")
	}

	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for i := len(model.SeverityOrder) - 1; i >= 0; i-- {
		sev := model.SeverityOrder[i]
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, snap.SeverityCounts[sev]))
	}
	sb.WriteString("\n")

	if len(snap.Metrics) > 0 {
		sb.WriteString("### Git Trend Metrics\n\n")
		sb.WriteString("| Metric | Value | Trend | Risk |\n")
		sb.WriteString("|--------|-------|-------|------|\n")
		for _, m := range snap.Metrics {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %s | %s |\n",
				m.MetricName, m.CurrentValue, m.Trend, m.RiskLevel))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Findings\n\n")
	if len(snap.Groups) == 0 {
		sb.WriteString("No issues found.\n")
		return sb.String(), nil
	}

	for _, group := range snap.Groups {
		sb.WriteString(fmt.Sprintf("### %s (%d instances)\n\n", KindTitle(group.Kind), group.Total))

		for _, f := range group.Top {
			sb.WriteString(fmt.Sprintf("- %s %s\n", severityTag(f.Severity), f.Description))
			sb.WriteString(fmt.Sprintf("  - File: `%s:%d`\n", f.FilePath, f.LineNumber))
			sb.WriteString(fmt.Sprintf("  - Suggestion: %s\n", f.SuggestedFix))
			sb.WriteString(fmt.Sprintf("  - Confidence: %.0f%%\n", f.Confidence*100))
		}

		if rest := group.Total - len(group.Top); rest > 0 {
			sb.WriteString(fmt.Sprintf("\n*... and %d more instances*\n", rest))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// KindTitle renders a finding kind as a display heading,
// e.g. long_function becomes "Long Function"
func KindTitle(kind model.Kind) string {
	words := strings.Split(string(kind), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func severityTag(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "[CRITICAL]"
	case model.SeverityHigh:
		return "[HIGH]"
	case model.SeverityMedium:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}
