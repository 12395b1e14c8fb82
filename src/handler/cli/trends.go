package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vaibhav17t/codebase-review/src/controller"
)

func (h *Handler) trendsCmd() *cobra.Command {
	var (
		lookbackDays int
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "trends [path]",
		Short: "Analyze git history for debt trends",
		Long:  "Mines recent commits for rushed-development and remedial-work signals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h.applyPathArg(args)
			if lookbackDays > 0 {
				h.cfg.History.LookbackDays = lookbackDays
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			metrics := analysisCtrl.Trends(ctx)

			if len(metrics) == 0 {
				fmt.Println("No concerning git patterns detected")
				fmt.Println("Your development practices look healthy!")
				return nil
			}

			fmt.Println("GIT TREND ANALYSIS")
			fmt.Println("========================================")
			for _, m := range metrics {
				fmt.Printf("[%s] %s\n", m.RiskLevel, m.MetricName)
				fmt.Printf("   %s\n", m.ImpactDescription)
				fmt.Printf("   Value: %.1f (trend: %s)\n\n", m.CurrentValue, m.Trend)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&lookbackDays, "days", "d", 0, "Lookback window in days (default from config)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", time.Minute, "Analysis timeout")

	return cmd
}
