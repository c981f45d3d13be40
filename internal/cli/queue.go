package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mearley24/AI-Server-sub001/internal/pipeline"
)

// queueCmd groups the fetch-queue subcommands
var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage the documentation fetch queue",
	Long: `The fetch queue is the persistent worklist of SKUs that lack
documentation in the vault. "build" emits a fresh snapshot from the current
inventory; "process" works outstanding rows against the vault and the local
search roots. Row statuses only move forward (todo → done/skip), so
interrupted runs resume safely.`,
}

var queueBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a fresh fetch-queue snapshot from the inventory",
	Long: `Build selects inventory items absent from the vault with enough
occurrences, ordered by priority, and overwrites the queue file with fresh
todo rows.

Example:
  avkb queue build --root ./knowledge --vault ./vault`,
	Args: cobra.NoArgs,
	RunE: runQueueBuild,
}

var queueProcessCmd = &cobra.Command{
	Use:   "process",
	Short: "Process outstanding fetch-queue rows",
	Long: `Process validates each outstanding row, checks the vault, searches the
local document roots, and copies found documentation into the vault. The
entire queue is rewritten afterward, untouched rows included.

Example:
  avkb queue process --root ./knowledge --vault ./vault --search-root ~/Docs --search-root ~/Downloads`,
	Args: cobra.NoArgs,
	RunE: runQueueProcess,
}

func init() {
	rootCmd.AddCommand(queueCmd)
	queueCmd.AddCommand(queueBuildCmd)
	queueCmd.AddCommand(queueProcessCmd)
}

func runQueueBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	items, err := p.Aggregate()
	if err != nil {
		return fmt.Errorf("aggregate failed: %w", err)
	}
	n, err := p.BuildQueue(items)
	if err != nil {
		return fmt.Errorf("queue build failed: %w", err)
	}

	fmt.Printf("✓ Queued %d SKUs in %s\n", n, cfg.Paths.QueueFile)
	return nil
}

func runQueueProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)
	stats, err := p.ProcessQueue()
	if err != nil {
		return fmt.Errorf("queue process failed: %w", err)
	}

	fmt.Printf("✓ Examined %d rows: %d done, %d skipped, %d files copied\n",
		stats.Examined, stats.Done, stats.Skipped, stats.Copied)
	return nil
}
