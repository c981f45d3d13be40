package llm

import (
	"context"
	"fmt"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

// Summarizer wraps a Provider and renders its output as a standalone markdown
// artifact. A nil provider means summaries are disabled; every method stays
// safe to call.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a Summarizer from configuration. An empty provider
// name yields a disabled summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider's name, or "" when disabled.
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary produces the executive-summary markdown for the inventory.
// Returns ("", nil) when disabled.
func (s *Summarizer) GenerateSummary(ctx context.Context, items []model.InventoryItem, queueRows int) (string, error) {
	if s.provider == nil {
		return "", nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Items:     items,
		QueueRows: queueRows,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	md := fmt.Sprintf("# Inventory Executive Summary\n\n_Generated by %s/%s; advisory only, never feeds back into classification._\n\n%s\n",
		s.provider.Name(), resp.Model, resp.Summary)
	return md, nil
}
