package controller

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/Vaibhav17t/codebase-review/src/config"
	"github.com/Vaibhav17t/codebase-review/src/service/report"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

// ReportController persists report artifacts
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// WriteArtifacts renders the snapshot in every configured format and
// writes timestamped, write-once files. Unlike analyzer failures,
// failing to persist output is a hard error: the run's purpose is
// unmet without it.
func (c *ReportController) WriteArtifacts(snap *report.Snapshot) ([]string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	timestamp := snap.GeneratedAt.Format("20060102_150405")

	if err := os.MkdirAll(c.cfg.Output.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var paths []string
	for _, format := range c.cfg.Output.Formats {
		output, err := generator.Generate(snap, format)
		if err != nil {
			return nil, fmt.Errorf("generating %s report: %w", format, err)
		}

		path := filepath.Join(c.cfg.Output.OutputDir, artifactName(format, timestamp))
		if err := os.WriteFile(path, []byte(output), 0644); err != nil {
			return nil, fmt.Errorf("writing report to %s: %w", path, err)
		}

		util.Info("Report written: %s", path)
		paths = append(paths, path)
	}

	return paths, nil
}

func artifactName(format, timestamp string) string {
	switch format {
	case "json":
		return "debt_data_" + timestamp + ".json"
	case "markdown", "md":
		return "debt_report_" + timestamp + ".md"
	default:
		return "debt_report_" + timestamp + ".html"
	}
}

// OpenInBrowser makes a best-effort attempt to open a report in the
// default browser. Failures are logged, never fatal.
func OpenInBrowser(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", abs)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", abs)
	default:
		cmd = exec.Command("xdg-open", abs)
	}

	if err := cmd.Start(); err != nil {
		util.Warn("Could not open report in browser: %v", err)
		return
	}
	util.Info("Opened report: %s", abs)
}
