package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"kindTitle": KindTitle,
	"pct": func(confidence float64) string {
		return fmt.Sprintf("%.0f%%", confidence*100)
	},
	"more": func(g Group) int {
		return g.Total - len(g.Top)
	},
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Codebase Review Report - {{.ProjectName}}</title>
    <meta charset="UTF-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 40px; background: #f8f9fa; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 40px; border-radius: 12px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        h1 { color: #2563eb; border-bottom: 3px solid #2563eb; padding-bottom: 10px; }
        h2 { color: #374151; margin-top: 30px; }
        .summary { background: #f3f4f6; padding: 20px; border-radius: 8px; border-left: 4px solid #2563eb; }
        .metrics { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 20px; margin: 20px 0; }
        .metric-card { background: #ffffff; border: 1px solid #e5e7eb; padding: 20px; border-radius: 8px; text-align: center; }
        .critical { border-left: 4px solid #ef4444; }
        .high { border-left: 4px solid #f97316; }
        .medium { border-left: 4px solid #eab308; }
        .low { border-left: 4px solid #22c55e; }
        .finding-group { margin: 20px 0; padding: 15px; background: #f9fafb; border-radius: 6px; }
        .finding-item { margin: 10px 0; padding: 10px; background: white; border-radius: 4px; font-size: 14px; }
        .confidence { float: right; font-weight: bold; }
        .footer { margin-top: 40px; text-align: center; color: #6b7280; font-size: 14px; }
        .file-path { font-family: 'Monaco', 'Menlo', 'Ubuntu Mono', monospace; font-size: 12px; color: #6b7280; }
        .no-issues { text-align: center; padding: 40px; color: #6b7280; }
        .score { font-size: 28px; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Codebase Review Report</h1>
        <p><strong>Project:</strong> {{.ProjectName}} |
           <strong>Generated:</strong> {{.GeneratedAt.Format "2006-01-02 15:04"}} |
           <strong>Health Score:</strong> <span class="score">{{.HealthScore}}/100</span> ({{.HealthStatus}})</p>

        <div class="summary">
            <h2>Executive Summary</h2>
            <p>{{nl2br .Summary}}</p>
        </div>

        <h2>Severity Breakdown</h2>
        <div class="metrics">
            <div class="metric-card critical">
                <h3>{{index .SeverityCounts "critical"}}</h3>
                <p>Critical Issues</p>
            </div>
            <div class="metric-card high">
                <h3>{{index .SeverityCounts "high"}}</h3>
                <p>High Priority</p>
            </div>
            <div class="metric-card medium">
                <h3>{{index .SeverityCounts "medium"}}</h3>
                <p>Medium Priority</p>
            </div>
            <div class="metric-card low">
                <h3>{{index .SeverityCounts "low"}}</h3>
                <p>Low Priority</p>
            </div>
        </div>
{{if .Groups}}
        <h2>Detailed Findings</h2>
{{range .Groups}}
        <div class="finding-group">
            <h3>{{kindTitle .Kind}} ({{.Total}} instances)</h3>
{{range .Top}}
            <div class="finding-item {{.Severity}}">
                <div class="file-path">{{.FilePath}}:{{.LineNumber}}</div>
                <span class="confidence">Confidence: {{pct .Confidence}}</span>
                <br><strong>{{.Description}}</strong>
                <br><em>Suggestion: {{.SuggestedFix}}</em>
            </div>
{{end}}
{{if gt (more .) 0}}
            <p><em>... and {{more .}} more instances</em></p>
{{end}}
        </div>
{{end}}
{{else}}
        <div class="no-issues">
            <h2>No Issues Found</h2>
            <p>Your codebase appears to be in excellent shape. Keep up the good work!</p>
        </div>
{{end}}
{{if .Metrics}}
        <h2>Git Trend Metrics</h2>
{{range .Metrics}}
        <div class="finding-item {{.RiskLevel}}">
            <strong>{{.MetricName}}</strong> (value: {{printf "%.1f" .CurrentValue}}, trend: {{.Trend}})
            <br><em>{{.ImpactDescription}}</em>
        </div>
{{end}}
{{end}}
        <div class="footer">
            <p>Generated by codebase-review</p>
        </div>
    </div>
</body>
</html>
`))

// renderHTML renders the styled single-page document
func renderHTML(snap *Snapshot) (string, error) {
	// Template lookups need string keys
	type htmlData struct {
		*Snapshot
		SeverityCounts map[string]int
	}

	counts := make(map[string]int, len(snap.SeverityCounts))
	for _, sev := range model.SeverityOrder {
		counts[string(sev)] = snap.SeverityCounts[sev]
	}

	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, htmlData{Snapshot: snap, SeverityCounts: counts}); err != nil {
		return "", fmt.Errorf("rendering HTML report: %w", err)
	}
	return sb.String(), nil
}
