package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure
type Config struct {
	Project     ProjectConfig     `yaml:"project"`
	Scan        ScanConfig        `yaml:"scan"`
	History     HistoryConfig     `yaml:"history"`
	Narrative   NarrativeConfig   `yaml:"narrative"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ProjectConfig identifies the codebase under analysis
type ProjectConfig struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// ScanConfig controls which files the corpus scanner analyzes
type ScanConfig struct {
	ExcludePatterns []string `yaml:"exclude_patterns"`
	FileExtensions  []string `yaml:"file_extensions"`
	MaxFileSizeMB   int      `yaml:"max_file_size_mb"`

	// AnalysisDepth is accepted and validated but currently has no
	// differentiated behavior. Reserved for future tiered scanning.
	AnalysisDepth string `yaml:"analysis_depth"`
}

// MaxFileBytes returns the file size ceiling in bytes
func (c ScanConfig) MaxFileBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// HistoryConfig controls the git trend analyzer
type HistoryConfig struct {
	Enabled      bool          `yaml:"enabled"`
	LookbackDays int           `yaml:"lookback_days"`
	GitTimeout   time.Duration `yaml:"git_timeout"`
}

// NarrativeConfig controls the AI executive summary
type NarrativeConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats             []string `yaml:"formats"`
	OutputDir           string   `yaml:"output_dir"`
	MaxFindingsPerGroup int      `yaml:"max_findings_per_group"`
	ConsoleTopN         int      `yaml:"console_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}

// Validate checks configuration invariants that would otherwise fail
// deep inside a run
func (c *Config) Validate() error {
	switch c.Scan.AnalysisDepth {
	case "quick", "standard", "deep":
	default:
		return fmt.Errorf("invalid analysis_depth %q (want quick, standard or deep)", c.Scan.AnalysisDepth)
	}
	if c.Scan.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max_file_size_mb must be positive, got %d", c.Scan.MaxFileSizeMB)
	}
	if c.History.LookbackDays <= 0 {
		return fmt.Errorf("lookback_days must be positive, got %d", c.History.LookbackDays)
	}
	if c.Concurrency.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Concurrency.Workers)
	}
	return nil
}
