package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Vaibhav17t/codebase-review/src/config"
	"github.com/Vaibhav17t/codebase-review/src/model"
	"github.com/Vaibhav17t/codebase-review/src/service/analyzer"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

// Scanner enumerates eligible files under a root path and runs the
// structural and textual analyzers against each of them
type Scanner struct {
	cfg        config.ScanConfig
	workers    int
	registry   *analyzer.Registry
	textual    analyzer.Analyzer
	exclusions *util.ExclusionMatcher
	allowExts  map[string]bool
}

// New creates a scanner from scan configuration
func New(cfg config.ScanConfig, workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	allow := make(map[string]bool, len(cfg.FileExtensions))
	for _, ext := range cfg.FileExtensions {
		allow[ext] = true
	}
	return &Scanner{
		cfg:        cfg,
		workers:    workers,
		registry:   analyzer.NewRegistry(),
		textual:    analyzer.NewTextual(),
		exclusions: util.NewExclusionMatcher(cfg.ExcludePatterns),
		allowExts:  allow,
	}
}

// Scan analyzes every eligible file under root and returns the union
// of their findings. Per-file failures are logged and excluded; they
// never abort the scan. A missing root yields an empty result plus a
// recorded error. No ordering across files is guaranteed.
func (s *Scanner) Scan(ctx context.Context, root string) ([]model.Finding, error) {
	startTime := time.Now()

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		util.Error("Project path does not exist: %s", root)
		return nil, nil
	}

	files := s.collectFiles(root)
	util.Debug("Scanning %d eligible files (workers: %d)", len(files), s.workers)

	var (
		findings []model.Finding
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, s.workers)
	)

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(filePath string) {
			defer wg.Done()

			sem <- struct{}{}        // Acquire semaphore
			defer func() { <-sem }() // Release semaphore

			if ctx.Err() != nil {
				return
			}

			fileFindings := s.analyzeFile(filePath)

			mu.Lock()
			findings = append(findings, fileFindings...)
			mu.Unlock()
		}(path)
	}

	wg.Wait()

	// A cancelled run discards whatever was collected
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	util.Info("Scan complete: %d findings across %d files (took %v)",
		len(findings), len(files), time.Since(startTime))
	return findings, nil
}

// AnalyzeContent runs both analyzers against one already-read file.
// Structural analysis applies only when the extension has a registered
// grammar; everything else gets text-only analysis.
func (s *Scanner) AnalyzeContent(filePath string, content []byte) []model.Finding {
	var findings []model.Finding

	if structural, ok := s.registry.ForExtension(filepath.Ext(filePath)); ok {
		findings = append(findings, structural.Analyze(filePath, content)...)
	}

	findings = append(findings, s.textual.Analyze(filePath, content)...)
	return findings
}

func (s *Scanner) analyzeFile(filePath string) (findings []model.Finding) {
	defer func() {
		if r := recover(); r != nil {
			util.Error("Analysis of %s panicked: %v", filePath, r)
			findings = nil
		}
	}()

	content, err := os.ReadFile(filePath)
	if err != nil {
		util.Warn("Failed to read %s: %v", filePath, err)
		return nil
	}

	return s.AnalyzeContent(filePath, content)
}

func (s *Scanner) collectFiles(root string) []string {
	var files []string

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			util.Warn("Cannot access %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && s.exclusions.Matches(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.eligible(path, d) {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		util.Warn("Directory walk ended early: %v", walkErr)
	}

	return files
}

func (s *Scanner) eligible(path string, d fs.DirEntry) bool {
	if !s.allowExts[filepath.Ext(path)] {
		return false
	}
	if s.exclusions.Matches(path) {
		return false
	}

	info, err := d.Info()
	if err != nil {
		util.Warn("Cannot stat %s: %v", path, err)
		return false
	}
	return info.Size() < s.cfg.MaxFileBytes()
}
