package controller

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Vaibhav17t/codebase-review/src/config"
	"github.com/Vaibhav17t/codebase-review/src/model"
	"github.com/Vaibhav17t/codebase-review/src/service/history"
	"github.com/Vaibhav17t/codebase-review/src/service/narrative"
	"github.com/Vaibhav17t/codebase-review/src/service/report"
	"github.com/Vaibhav17t/codebase-review/src/service/scanner"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

// AnalysisController orchestrates the debt analysis pipeline
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a codebase
type AnalyzeRequest struct {
	ProjectName   string
	SkipHistory   bool
	SkipNarrative bool
}

// Analyze runs the full pipeline: corpus scan and history scan in
// parallel, then summary composition and report assembly
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*report.Snapshot, error) {
	startTime := time.Now()

	root := c.cfg.Project.Path
	name := c.projectName(req.ProjectName)
	util.Info("Starting debt analysis for %s (depth: %s)", name, c.cfg.Scan.AnalysisDepth)

	var (
		findings []model.Finding
		metrics  []model.DebtMetric
	)

	// The two scans are independent and read-only; run them together
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scn := scanner.New(c.cfg.Scan, c.cfg.Concurrency.Workers)
		result, err := scn.Scan(gctx, root)
		if err != nil {
			return err
		}
		findings = result
		return nil
	})

	if c.cfg.History.Enabled && !req.SkipHistory {
		g.Go(func() error {
			metrics = history.New(root, c.cfg.History).DebtTrends(gctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	util.Info("Found %d potential issues, %d trend metrics", len(findings), len(metrics))

	snap := report.Assemble(name, c.cfg.Scan.AnalysisDepth, findings, metrics, c.cfg.Output.MaxFindingsPerGroup)

	if !req.SkipNarrative {
		stats := narrative.BuildStats(findings, metrics)
		snap.Summary = narrative.Compose(ctx, c.summarizer(), stats)
	}

	util.Info("Analysis complete: %d findings, health score %d (took %v)",
		len(findings), snap.HealthScore, time.Since(startTime))

	return snap, nil
}

// QuickScan runs the corpus scan only and assembles a snapshot without
// narrative or history data
func (c *AnalysisController) QuickScan(ctx context.Context, projectName string) (*report.Snapshot, error) {
	scn := scanner.New(c.cfg.Scan, c.cfg.Concurrency.Workers)
	findings, err := scn.Scan(ctx, c.cfg.Project.Path)
	if err != nil {
		return nil, err
	}

	return report.Assemble(c.projectName(projectName), c.cfg.Scan.AnalysisDepth,
		findings, nil, c.cfg.Output.MaxFindingsPerGroup), nil
}

// Trends runs the history analyzer alone
func (c *AnalysisController) Trends(ctx context.Context) []model.DebtMetric {
	return history.New(c.cfg.Project.Path, c.cfg.History).DebtTrends(ctx)
}

// summarizer picks the AI summarizer when configured and an API key is
// present; Compose falls back to the deterministic template otherwise
func (c *AnalysisController) summarizer() narrative.Summarizer {
	if !c.cfg.Narrative.Enabled {
		return nil
	}

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		util.Warn("ANTHROPIC_API_KEY not set, using templated summary")
		return nil
	}

	return narrative.NewAnthropicSummarizer(apiKey, c.cfg.Narrative)
}

func (c *AnalysisController) projectName(override string) string {
	if override != "" {
		return override
	}
	if c.cfg.Project.Name != "" {
		return c.cfg.Project.Name
	}

	abs, err := filepath.Abs(c.cfg.Project.Path)
	if err != nil {
		return c.cfg.Project.Path
	}
	return filepath.Base(abs)
}
