package model

// Severity represents the severity level of a finding
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityOrder lists severities from lowest to highest.
var SeverityOrder = []Severity{
	SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical,
}

// Rank returns the position of the severity in the total order.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	for i, sev := range SeverityOrder {
		if sev == s {
			return i
		}
	}
	return -1
}

// Penalty returns the health-score penalty for one finding of this severity
func (s Severity) Penalty() int {
	switch s {
	case SeverityCritical:
		return 10
	case SeverityHigh:
		return 5
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

// Kind identifies the heuristic that produced a finding
type Kind string

const (
	KindLongFunction      Kind = "long_function"
	KindTooManyParameters Kind = "too_many_parameters"
	KindDeepNesting       Kind = "deep_nesting"
	KindLargeFile         Kind = "large_file"
	KindDebtComment       Kind = "technical_debt_comment"
	KindLongLine          Kind = "long_line"
	KindSyntaxError       Kind = "syntax_error"
)

// kindPolicy fixes severity, confidence and remediation hint per kind.
// Confidence is heuristic certainty, not computed from data.
type kindPolicy struct {
	severity   Severity
	confidence float64
	fix        string
}

var kindPolicies = map[Kind]kindPolicy{
	KindLongFunction:      {SeverityMedium, 0.8, "Consider breaking into smaller functions"},
	KindTooManyParameters: {SeverityHigh, 0.9, "Use a parameter struct or configuration object"},
	KindDeepNesting:       {SeverityHigh, 0.7, "Extract methods or use early returns"},
	KindLargeFile:         {SeverityMedium, 0.8, "Consider splitting into multiple files"},
	KindDebtComment:       {SeverityLow, 0.6, "Address the noted issue"},
	KindLongLine:          {SeverityLow, 0.9, "Break line or refactor for readability"},
	KindSyntaxError:       {SeverityCritical, 1.0, "Fix syntax errors before proceeding"},
}

// Known reports whether the kind has a registered policy
func (k Kind) Known() bool {
	_, ok := kindPolicies[k]
	return ok
}

// DefaultSeverity returns the severity assigned to findings of this kind
func (k Kind) DefaultSeverity() Severity {
	if p, ok := kindPolicies[k]; ok {
		return p.severity
	}
	return SeverityLow
}

// Confidence returns the fixed confidence for this kind
func (k Kind) Confidence() float64 {
	if p, ok := kindPolicies[k]; ok {
		return p.confidence
	}
	return 0.5
}

// SuggestedFix returns the static remediation hint for this kind
func (k Kind) SuggestedFix() string {
	if p, ok := kindPolicies[k]; ok {
		return p.fix
	}
	return ""
}

// Finding represents a single detected code-quality issue.
// Findings carry no identity beyond their field values; duplicates are
// permitted and meaningful.
type Finding struct {
	FilePath     string   `json:"file_path"`
	LineNumber   int      `json:"line_number"`
	Kind         Kind     `json:"kind"`
	Description  string   `json:"description"`
	Severity     Severity `json:"severity"`
	SuggestedFix string   `json:"suggested_fix"`
	Confidence   float64  `json:"confidence"`
}

// NewFinding builds a finding with the severity, confidence and
// suggested fix that the kind's policy dictates.
func NewFinding(filePath string, line int, kind Kind, description string) Finding {
	return Finding{
		FilePath:     filePath,
		LineNumber:   line,
		Kind:         kind,
		Description:  description,
		Severity:     kind.DefaultSeverity(),
		SuggestedFix: kind.SuggestedFix(),
		Confidence:   kind.Confidence(),
	}
}

// DebtMetric represents a history-level statistic promoted to a
// reportable signal after crossing a threshold
type DebtMetric struct {
	MetricName        string   `json:"metric_name"`
	CurrentValue      float64  `json:"current_value"`
	Trend             string   `json:"trend"`
	RiskLevel         Severity `json:"risk_level"`
	ImpactDescription string   `json:"impact_description"`
}
