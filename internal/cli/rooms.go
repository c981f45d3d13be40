package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mearley24/AI-Server-sub001/internal/pipeline"
)

// roomsCmd represents the rooms command
var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Build per-archetype room equipment packages",
	Long: `Rooms aggregates the external SKU→room mapping into one markdown package
per room archetype, listing its most frequent equipment. Archetypes with too
few occurrences are silently omitted.

Example:
  avkb rooms --root ./knowledge`,
	Args: cobra.NoArgs,
	RunE: runRooms,
}

func init() {
	rootCmd.AddCommand(roomsCmd)
}

func runRooms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	n, err := p.BuildRooms()
	if err != nil {
		return fmt.Errorf("rooms failed: %w", err)
	}

	fmt.Printf("✓ Wrote %d room packages to %s\n", n, cfg.Paths.PackagesDir)
	return nil
}
