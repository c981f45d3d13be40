package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mearley24/AI-Server-sub001/internal/pipeline"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <project>",
	Short: "Export a project's bill of materials",
	Long: `Export collects every signal record whose source path contains the
project name, resolves manufacturer/category from the curated room mapping
and rooms from the package artifacts, and writes an import-ready bill of
materials as CSV and XLSX.

Example:
  avkb export "Smith Residence" --root ./knowledge`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	project := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	n, csvPath, err := p.ExportProposal(project)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exported %d line items for %q\n", n, project)
	fmt.Printf("✓ Wrote %s (and .xlsx)\n", csvPath)
	return nil
}
