package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

func sourceWithStatements(n int) []byte {
	var sb strings.Builder
	sb.WriteString("package sample\n\nfunc generated() {\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "\t_ = %d\n", i)
	}
	sb.WriteString("}\n")
	return []byte(sb.String())
}

func sourceWithNestedIfs(depth int) []byte {
	var sb strings.Builder
	sb.WriteString("package sample\n\nfunc nested() {\n")
	for i := 0; i < depth; i++ {
		sb.WriteString(strings.Repeat("\t", i+1) + "if true {\n")
	}
	sb.WriteString(strings.Repeat("\t", depth+1) + "_ = 0\n")
	for i := depth - 1; i >= 0; i-- {
		sb.WriteString(strings.Repeat("\t", i+1) + "}\n")
	}
	sb.WriteString("}\n")
	return []byte(sb.String())
}

func findingsOfKind(findings []model.Finding, kind model.Kind) []model.Finding {
	var out []model.Finding
	for _, f := range findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func TestLongFunctionBoundary(t *testing.T) {
	s := NewStructural()

	// Exactly 20 statements stays under the threshold
	findings := s.Analyze("sample.go", sourceWithStatements(20))
	assert.Empty(t, findingsOfKind(findings, model.KindLongFunction))

	// 21 statements crosses it
	findings = s.Analyze("sample.go", sourceWithStatements(21))
	long := findingsOfKind(findings, model.KindLongFunction)
	require.Len(t, long, 1)
	assert.Equal(t, model.SeverityMedium, long[0].Severity)
	assert.Equal(t, 0.8, long[0].Confidence)
	assert.Equal(t, 3, long[0].LineNumber)
	assert.Contains(t, long[0].Description, "generated")
	assert.Contains(t, long[0].Description, "21")
}

func TestTooManyParametersBoundary(t *testing.T) {
	s := NewStructural()

	five := []byte("package sample\n\nfunc wide(a, b, c, d, e int) {}\n")
	findings := s.Analyze("sample.go", five)
	assert.Empty(t, findingsOfKind(findings, model.KindTooManyParameters))

	six := []byte("package sample\n\nfunc wide(a, b, c, d, e, g int) {}\n")
	findings = s.Analyze("sample.go", six)
	params := findingsOfKind(findings, model.KindTooManyParameters)
	require.Len(t, params, 1)
	assert.Equal(t, model.SeverityHigh, params[0].Severity)
	assert.Equal(t, 0.9, params[0].Confidence)
	assert.Contains(t, params[0].Description, "6")
}

func TestParameterCountMixedFields(t *testing.T) {
	s := NewStructural()

	// Grouped and unnamed parameters count individually
	src := []byte("package sample\n\nfunc wide(a, b string, c int, _ bool, e, g float64) {}\n")
	findings := s.Analyze("sample.go", src)
	require.Len(t, findingsOfKind(findings, model.KindTooManyParameters), 1)
}

func TestDeepNestingBoundary(t *testing.T) {
	s := NewStructural()

	// Four nested ifs: outermost sits above a chain of depth 3
	findings := s.Analyze("sample.go", sourceWithNestedIfs(4))
	assert.Empty(t, findingsOfKind(findings, model.KindDeepNesting))

	// Five nested ifs: outermost measures depth 4 and fires once
	findings = s.Analyze("sample.go", sourceWithNestedIfs(5))
	nesting := findingsOfKind(findings, model.KindDeepNesting)
	require.Len(t, nesting, 1)
	assert.Equal(t, model.SeverityHigh, nesting[0].Severity)
	assert.Equal(t, 0.7, nesting[0].Confidence)
	assert.Contains(t, nesting[0].Description, "4")
}

func TestNestingCountsLoopsAndSwitches(t *testing.T) {
	s := NewStructural()

	// for > switch > if > if below the outer for: depth 4 at the loop.
	// The switch deepens the measurement but cannot fire itself.
	src := []byte(`package sample

func mixed(xs []int) {
	for _, x := range xs {
		switch x {
		case 0:
			if x == 0 {
				if x > -1 {
					if x < 1 {
						_ = x
					}
				}
			}
		}
	}
}
`)
	findings := s.Analyze("sample.go", src)
	nesting := findingsOfKind(findings, model.KindDeepNesting)
	require.Len(t, nesting, 1)
	assert.Equal(t, 4, nesting[0].LineNumber)
	assert.Contains(t, nesting[0].Description, "4 levels")
}

func TestNestingIgnoresFunctionLiterals(t *testing.T) {
	s := NewStructural()

	src := []byte(`package sample

func outer() {
	if true {
		fn := func() {
			if true {
				if true {
					if true {
						_ = 0
					}
				}
			}
		}
		fn()
	}
}
`)
	findings := s.Analyze("sample.go", src)
	// The literal's ifs are their own scope; nothing reaches depth 4
	assert.Empty(t, findingsOfKind(findings, model.KindDeepNesting))
}

func TestSyntaxErrorFinding(t *testing.T) {
	s := NewStructural()

	findings := s.Analyze("broken.go", []byte("package sample\n\nfunc broken( {\n"))

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, model.KindSyntaxError, f.Kind)
	assert.Equal(t, 1, f.LineNumber)
	assert.Equal(t, model.SeverityCritical, f.Severity)
	assert.Equal(t, 1.0, f.Confidence)
}

func TestCleanFileYieldsNothing(t *testing.T) {
	s := NewStructural()

	src := []byte(`package sample

func small(a int) int {
	if a > 0 {
		return a
	}
	return -a
}
`)
	assert.Empty(t, s.Analyze("sample.go", src))
}
