package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Path: ".",
		},
		Scan: ScanConfig{
			ExcludePatterns: []string{
				".git", "vendor", "node_modules", "__pycache__", ".venv", "testdata",
			},
			FileExtensions: []string{
				".go", ".py", ".js", ".ts", ".java", ".cpp", ".cs",
			},
			MaxFileSizeMB: 5,
			AnalysisDepth: "standard",
		},
		History: HistoryConfig{
			Enabled:      true,
			LookbackDays: 30,
			GitTimeout:   30 * time.Second,
		},
		Narrative: NarrativeConfig{
			Enabled:   true,
			Model:     "claude-3-5-haiku-20241022",
			MaxTokens: 1000,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Formats:             []string{"html", "json"},
			OutputDir:           "reports",
			MaxFindingsPerGroup: 5,
			ConsoleTopN:         3,
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
		},
	}
}
