package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vaibhav17t/codebase-review/src/config"
	"github.com/Vaibhav17t/codebase-review/src/util"
)

// Version is the tool version, overridable at build time
var Version = "1.0.0"

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	configPath string
	rootCmd    *cobra.Command
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:   "codebase-review",
		Short: "Technical debt detection for codebases",
		Long:  "Analyzes a source tree and its git history to surface maintainability risk",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
	}

	// Global flags
	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file")

	// Add subcommands
	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.quickCmd())
	h.rootCmd.AddCommand(h.trendsCmd())
	h.rootCmd.AddCommand(h.checksCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) loadConfig() error {
	loader := config.NewLoader()
	cfg, err := loader.Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	h.cfg = cfg

	// Initialize logger from config
	util.SetDefaultLogger(cfg.Logging)
	util.Debug("Configuration loaded successfully")

	return nil
}

// applyPathArg lets subcommands take the project path as an optional
// positional argument overriding the configured path
func (h *Handler) applyPathArg(args []string) {
	if len(args) > 0 && args[0] != "" {
		h.cfg.Project.Path = args[0]
	}
}

// Execute runs the CLI
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
