package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/pipeline"
	"github.com/mearley24/AI-Server-sub001/internal/store"
)

var (
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// aggregateCmd represents the aggregate command
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate signal records into the equipment inventory",
	Long: `Aggregate merges all signal records into per-SKU inventory items and
renders the frequency table and condensed summary. The aggregation is a full
recompute; the previous inventory is replaced outright.

Example:
  avkb aggregate --root ./knowledge
  avkb aggregate --root ./knowledge --llm --llm-provider ollama`,
	Args: cobra.NoArgs,
	RunE: runAggregate,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)

	// LLM flags
	aggregateCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM executive summary")
	aggregateCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	aggregateCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	p := pipeline.New(cfg)
	items, err := p.Aggregate()
	if err != nil {
		return fmt.Errorf("aggregate failed: %w", err)
	}
	if err := p.WriteReports(items); err != nil {
		return fmt.Errorf("reports failed: %w", err)
	}

	if llmEnabled {
		rows, _ := store.LoadQueue(cfg.Paths.QueueFile)
		p.Summarize(context.Background(), items, len(rows))
	}

	fmt.Printf("✓ Aggregated %d inventory items\n", len(items))
	fmt.Printf("✓ Reports written to %s\n", cfg.Paths.ReportsDir)
	return nil
}

// configureLLM fills cfg.LLM from the flags and environment. The API key is
// never taken from a flag.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}
