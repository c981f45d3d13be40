// Package llm provides optional executive-summary generation for the
// inventory report. Summaries are strictly separated from the pipeline:
// they never affect extraction, classification, or counts.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates an executive summary of the inventory snapshot
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization.
type SummarizeRequest struct {
	// Items is the aggregated inventory, already sorted
	Items []model.InventoryItem

	// QueueRows is how many SKUs are still awaiting documentation
	QueueRows int

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output.
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// BuildPrompt constructs the default summarization prompt. Only the top items
// are inlined; the model describes the inventory, it never classifies it.
func BuildPrompt(req SummarizeRequest) string {
	const topN = 25

	var table strings.Builder
	for i, it := range req.Items {
		if i >= topN {
			break
		}
		fmt.Fprintf(&table, "- %s %s (%s): %d occurrences\n", it.Manufacturer, it.Key, it.Category, it.Count)
	}

	return fmt.Sprintf(`You are summarizing an AV-project equipment inventory built by deterministic
pattern extraction from project documentation.

RULES:
1. Describe only the equipment listed below. Do not invent items or vendors.
2. Do not re-classify anything; manufacturer and category guesses are fixed.
3. Note concentrations (dominant manufacturers, heavy categories) and the
   documentation backlog.

Inventory:
- Distinct items: %d
- SKUs awaiting documentation: %d

Top items:
%s
Write a short executive summary in markdown.`, len(req.Items), req.QueueRows, table.String())
}
