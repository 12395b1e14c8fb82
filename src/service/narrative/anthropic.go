package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Vaibhav17t/codebase-review/src/config"
)

// AnthropicSummarizer generates executive summaries through the
// Anthropic API
type AnthropicSummarizer struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicSummarizer creates a summarizer from narrative config.
// The API key comes from the caller, not the config file.
func NewAnthropicSummarizer(apiKey string, cfg config.NarrativeConfig) *AnthropicSummarizer {
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &AnthropicSummarizer{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// Name returns the summarizer name
func (s *AnthropicSummarizer) Name() string {
	return "anthropic"
}

// Summarize calls the Anthropic API with the aggregate statistics and
// returns the generated prose
func (s *AnthropicSummarizer) Summarize(ctx context.Context, stats Stats) (string, error) {
	prompt := buildPrompt(stats)

	response, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("anthropic response contained no text content")
	}
	return text.String(), nil
}

func buildPrompt(stats Stats) string {
	var topKinds []string
	for _, kc := range stats.TopKinds {
		topKinds = append(topKinds, fmt.Sprintf("%s (%d)", kc.Kind, kc.Count))
	}

	var sb strings.Builder
	sb.WriteString("Generate an executive summary for a technical debt analysis report.\n\n")
	sb.WriteString("Key Data:\n")
	fmt.Fprintf(&sb, "- Total Issues Found: %d\n", stats.TotalFindings)
	fmt.Fprintf(&sb, "- Critical Issues: %d\n", stats.CriticalFindings)
	fmt.Fprintf(&sb, "- High Priority Issues: %d\n", stats.HighFindings)
	fmt.Fprintf(&sb, "- Top Issue Types: %s\n", strings.Join(topKinds, ", "))
	fmt.Fprintf(&sb, "- Trends: %s\n\n", strings.Join(stats.MetricNames, ", "))
	sb.WriteString("Create a 3-paragraph executive summary that:\n")
	sb.WriteString("1. Summarizes the current technical debt state\n")
	sb.WriteString("2. Highlights the biggest risks and their business impact\n")
	sb.WriteString("3. Provides 3 concrete recommendations with estimated effort\n\n")
	sb.WriteString("Make it business-friendly but technically accurate.")

	return sb.String()
}
