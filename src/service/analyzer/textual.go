package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

// Textual analysis thresholds, fixed per kind
const (
	maxFileLines   = 500
	maxLineLength  = 120
	invalidByteSub = "�"
)

// debtMarkerPattern matches conventional debt-marker tokens anywhere in
// a line, case-insensitively
var debtMarkerPattern = regexp.MustCompile(`(?i)TODO|FIXME|HACK|XXX`)

// Textual scans raw file text, independent of language or parseability
type Textual struct{}

// NewTextual creates a new textual analyzer
func NewTextual() *Textual {
	return &Textual{}
}

// Name returns the analyzer name
func (t *Textual) Name() string {
	return "textual"
}

// Analyze runs the line-oriented rules: oversized file, debt-marker
// comments and overlong lines. Rules fire independently; one line may
// trigger several of them.
func (t *Textual) Analyze(filePath string, content []byte) []model.Finding {
	text := strings.ToValidUTF8(string(content), invalidByteSub)
	lines := strings.Split(text, "\n")

	var findings []model.Finding

	if len(lines) > maxFileLines {
		findings = append(findings, model.NewFinding(
			filePath, 1, model.KindLargeFile,
			fmt.Sprintf("File has %d lines (>%d)", len(lines), maxFileLines),
		))
	}

	for i, line := range lines {
		lineNo := i + 1

		if debtMarkerPattern.MatchString(line) {
			findings = append(findings, model.NewFinding(
				filePath, lineNo, model.KindDebtComment,
				fmt.Sprintf("Technical debt marker: %s", strings.TrimSpace(line)),
			))
		}

		if length := utf8.RuneCountInString(line); length > maxLineLength {
			findings = append(findings, model.NewFinding(
				filePath, lineNo, model.KindLongLine,
				fmt.Sprintf("Line length: %d characters (>%d)", length, maxLineLength),
			))
		}
	}

	return findings
}
