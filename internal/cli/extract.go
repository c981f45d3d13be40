package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mearley24/AI-Server-sub001/internal/pipeline"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract signal records from raw documents",
	Long: `Extract scans every raw text document under the knowledge root and writes
one signal record per document: candidate model/SKU tokens plus
scope-relevant heading lines. Re-running replaces each document's record.

Example:
  avkb extract --root ./knowledge
  avkb extract --root ./knowledge -v`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	n, err := p.ExtractAll()
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	fmt.Printf("✓ Extracted %d signal records under %s\n", n, cfg.Paths.KnowledgeRoot)
	return nil
}
