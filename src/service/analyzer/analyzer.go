package analyzer

import (
	"github.com/Vaibhav17t/codebase-review/src/model"
)

// Analyzer inspects the content of a single file and reports findings.
// Implementations must be side-effect-free so files can be analyzed
// concurrently.
type Analyzer interface {
	// Name returns the analyzer name
	Name() string

	// Analyze inspects one file's content and returns its findings
	Analyze(filePath string, content []byte) []model.Finding
}

// Registry dispatches structural analysis by file extension.
// Extensions without a registered analyzer fall through to text-only
// analysis in the scanner.
type Registry struct {
	byExt map[string]Analyzer
}

// NewRegistry creates a registry with the built-in structural analyzers
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Analyzer)}
	r.Register(".go", NewStructural())
	return r
}

// Register maps an extension (including the dot) to an analyzer
func (r *Registry) Register(ext string, a Analyzer) {
	r.byExt[ext] = a
}

// ForExtension returns the structural analyzer for an extension, if any
func (r *Registry) ForExtension(ext string) (Analyzer, bool) {
	a, ok := r.byExt[ext]
	return a, ok
}
