package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("codebase-review %s\n", Version)
		},
	}
}

func (h *Handler) checksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the heuristic checks",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Structural checks (Go sources):")
			fmt.Println("  - long_function          : function body over 20 statements")
			fmt.Println("  - too_many_parameters    : more than 5 parameters")
			fmt.Println("  - deep_nesting           : control flow nested more than 3 levels")
			fmt.Println("  - syntax_error           : file fails to parse")
			fmt.Println("")
			fmt.Println("Textual checks (all configured extensions):")
			fmt.Println("  - large_file             : more than 500 lines")
			fmt.Println("  - technical_debt_comment : TODO/FIXME/HACK/XXX markers")
			fmt.Println("  - long_line              : line over 120 characters")
			fmt.Println("")
			fmt.Println("History checks (git):")
			fmt.Println("  - High Commit Frequency  : over 10 commits per active day")
			fmt.Println("  - Technical Debt Commits : over 20% fix/refactor commit messages")
		},
	}
}
