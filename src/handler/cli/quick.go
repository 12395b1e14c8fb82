package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vaibhav17t/codebase-review/src/controller"
	"github.com/Vaibhav17t/codebase-review/src/model"
)

func (h *Handler) quickCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "quick [path]",
		Short: "Quick health check",
		Long:  "Runs the corpus scan only and prints the health score",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h.applyPathArg(args)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			snap, err := analysisCtrl.QuickScan(ctx, "")
			if err != nil {
				return fmt.Errorf("quick scan failed: %w", err)
			}

			fmt.Println("QUICK HEALTH CHECK")
			fmt.Println("========================================")
			fmt.Printf("Health Score: %d/100 (%s)\n", snap.HealthScore, snap.HealthStatus)
			fmt.Printf("Critical: %d\n", snap.SeverityCounts[model.SeverityCritical])
			fmt.Printf("High: %d\n", snap.SeverityCounts[model.SeverityHigh])
			fmt.Printf("Total Issues: %d\n", snap.TotalFindings())
			fmt.Printf("Analysis Depth: %s\n", snap.AnalysisDepth)

			if snap.HealthScore < 70 {
				fmt.Println("\nRecommendation: run a full analysis for detailed insights")
			} else if snap.HealthScore >= 90 {
				fmt.Println("\nGreat job! Your codebase looks healthy")
			}

			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 2*time.Minute, "Scan timeout")

	return cmd
}
