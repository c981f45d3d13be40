package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mearley24/AI-Server-sub001/internal/logger"
	"github.com/mearley24/AI-Server-sub001/internal/model"
)

var (
	cfgFile       string
	verbose       bool
	knowledgeRoot string
	vaultDir      string
	searchRoots   []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "avkb",
	Short: "avkb - AV project knowledge pipeline",
	Long: `avkb turns free-text signal files extracted from AV-system project
documentation (proposals, manuals, drawings, field markups) into a
deduplicated equipment inventory, a prioritized documentation fetch queue,
room-grouped equipment packages, and a vendor-import-ready bill of materials.

All classification is deterministic pattern matching; artifacts live as plain
JSON, CSV, and markdown files under the knowledge root.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("avkb v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.avkb/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&knowledgeRoot, "root", "", "knowledge root directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&vaultDir, "vault", "", "documentation vault directory (overrides config)")
	rootCmd.PersistentFlags().StringSliceVar(&searchRoots, "search-root", nil, "local document tree to search (repeatable, overrides config)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".avkb"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match AVKB_*
	viper.SetEnvPrefix("AVKB")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, the config file, environment, and path flags
// into the effective configuration.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if knowledgeRoot != "" {
		rebasePaths(&cfg.Paths, knowledgeRoot)
	}
	if vaultDir != "" {
		cfg.Paths.VaultDir = vaultDir
	}
	if len(searchRoots) > 0 {
		cfg.Paths.SearchRoots = searchRoots
	}

	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	logger.SetVerbose(cfg.Output.Verbose)
	return cfg, nil
}

// rebasePaths relocates every derived artifact path under a new knowledge
// root; explicitly configured vault and search roots are left alone.
func rebasePaths(p *model.PathsConfig, root string) {
	p.KnowledgeRoot = root
	p.ReportsDir = filepath.Join(root, "_reports")
	p.PackagesDir = filepath.Join(root, "_reports", "room_packages")
	p.QueueFile = filepath.Join(root, "_reports", "fetch_queue.csv")
	p.RoomMapFile = filepath.Join(root, "room_map.csv")
}
