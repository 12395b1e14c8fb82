package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vaibhav17t/codebase-review/src/controller"
	"github.com/Vaibhav17t/codebase-review/src/service/report"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		projectName   string
		outputDir     string
		format        string
		timeout       time.Duration
		openReport    bool
		showConsole   bool
		skipHistory   bool
		skipNarrative bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Run a full technical debt analysis",
		Long:  "Scans the codebase, mines git history, and writes HTML/JSON report artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h.applyPathArg(args)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
			}
			if format != "" {
				h.cfg.Output.Formats = []string{format}
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			snap, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{
				ProjectName:   projectName,
				SkipHistory:   skipHistory,
				SkipNarrative: skipNarrative,
			})
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			if showConsole {
				report.WriteConsole(os.Stdout, snap, h.cfg.Output.ConsoleTopN)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			paths, err := reportCtrl.WriteArtifacts(snap)
			if err != nil {
				return fmt.Errorf("writing reports: %w", err)
			}
			for _, path := range paths {
				fmt.Printf("Report written to %s\n", path)
			}

			if openReport && len(paths) > 0 {
				controller.OpenInBrowser(paths[0])
			}

			// Print summary to stderr
			fmt.Fprintf(os.Stderr, "\nAnalysis complete: %s\n", snap.ProjectName)
			fmt.Fprintf(os.Stderr, "  Total issues: %d\n", snap.TotalFindings())
			fmt.Fprintf(os.Stderr, "  Health score: %d/100 (%s)\n", snap.HealthScore, snap.HealthStatus)

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name for the report")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for report artifacts")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Single output format (html, json, markdown)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")
	cmd.Flags().BoolVar(&openReport, "open", false, "Open the first report artifact in a browser")
	cmd.Flags().BoolVar(&showConsole, "console", false, "Also print the full report to the console")
	cmd.Flags().BoolVar(&skipHistory, "skip-history", false, "Skip git trend analysis")
	cmd.Flags().BoolVar(&skipNarrative, "skip-narrative", false, "Skip the AI executive summary")

	return cmd
}
