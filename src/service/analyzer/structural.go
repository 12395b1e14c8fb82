package analyzer

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/Vaibhav17t/codebase-review/src/model"
)

// Structural analysis thresholds. These are part of each kind's fixed
// policy, not configuration.
const (
	maxFunctionStatements = 20
	maxParameters         = 5
	maxNestingDepth       = 3
)

// Structural analyzes Go source through its syntax tree
type Structural struct{}

// NewStructural creates a new structural analyzer
func NewStructural() *Structural {
	return &Structural{}
}

// Name returns the analyzer name
func (s *Structural) Name() string {
	return "structural"
}

// Analyze parses the file and walks the syntax tree for long
// functions, oversized parameter lists and deep nesting. A parse
// failure yields exactly one syntax_error finding and ends structural
// analysis of the file.
func (s *Structural) Analyze(filePath string, content []byte) []model.Finding {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, content, 0)
	if err != nil {
		return []model.Finding{
			model.NewFinding(filePath, 1, model.KindSyntaxError, "File contains syntax errors"),
		}
	}

	var findings []model.Finding

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.FuncDecl:
			findings = append(findings, s.checkFunction(fset, filePath, node)...)
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt:
			if depth := nestingDepth(n); depth > maxNestingDepth {
				line := fset.Position(n.Pos()).Line
				findings = append(findings, model.NewFinding(
					filePath, line, model.KindDeepNesting,
					fmt.Sprintf("Code block nested %d levels deep (>%d)", depth, maxNestingDepth),
				))
			}
		}
		return true
	})

	return findings
}

func (s *Structural) checkFunction(fset *token.FileSet, filePath string, fn *ast.FuncDecl) []model.Finding {
	var findings []model.Finding
	line := fset.Position(fn.Pos()).Line

	if fn.Body != nil {
		if count := len(fn.Body.List); count > maxFunctionStatements {
			findings = append(findings, model.NewFinding(
				filePath, line, model.KindLongFunction,
				fmt.Sprintf("Function '%s' has %d statements (>%d)", fn.Name.Name, count, maxFunctionStatements),
			))
		}
	}

	if count := paramCount(fn.Type); count > maxParameters {
		findings = append(findings, model.NewFinding(
			filePath, line, model.KindTooManyParameters,
			fmt.Sprintf("Function '%s' has %d parameters (>%d)", fn.Name.Name, count, maxParameters),
		))
	}

	return findings
}

func paramCount(ft *ast.FuncType) int {
	if ft == nil || ft.Params == nil {
		return 0
	}
	count := 0
	for _, field := range ft.Params.List {
		// Unnamed parameters contribute one each
		if len(field.Names) == 0 {
			count++
		} else {
			count += len(field.Names)
		}
	}
	return count
}

// nestingDepth returns the length of the deepest chain of nesting
// constructs below root. Depth 0 is root itself. if/for/range trigger
// emission; switch and select also deepen the measurement. Nested
// function literals are their own scope and do not contribute.
func nestingDepth(root ast.Node) int {
	maxDepth := 0
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil || n == root {
			return true
		}
		switch n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt,
			*ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			if d := 1 + nestingDepth(n); d > maxDepth {
				maxDepth = d
			}
			return false
		}
		return true
	})
	return maxDepth
}
