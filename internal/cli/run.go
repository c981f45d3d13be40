package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mearley24/AI-Server-sub001/internal/pipeline"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline end to end",
	Long: `Run sequences every stage against the knowledge root: extract signal
records, aggregate the inventory, render reports, build and process the fetch
queue, and build room packages. Stages communicate only through artifacts on
disk, so any stage can also be re-run individually afterward.

Example:
  avkb run --root ./knowledge --vault ./vault
  avkb run --root ./knowledge --llm --llm-provider openai`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// LLM flags (shared variables with aggregate)
	runCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM executive summary")
	runCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	runCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Knowledge root: %s\n", cfg.Paths.KnowledgeRoot)
		fmt.Fprintf(os.Stderr, "Vault:          %s\n", cfg.Paths.VaultDir)
		fmt.Fprintf(os.Stderr, "Search roots:   %v\n", cfg.Paths.SearchRoots)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.New(cfg)
	if err := p.Run(context.Background()); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Printf("✓ Pipeline complete; artifacts under %s\n", cfg.Paths.ReportsDir)
	return nil
}
