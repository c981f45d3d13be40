package model

// Config is the full pipeline configuration.
// Hierarchy (highest to lowest priority): CLI flags, AVKB_* environment
// variables, ~/.avkb/config.yaml, defaults.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Queue   QueueConfig   `yaml:"queue" mapstructure:"queue"`
	Rooms   RoomsConfig   `yaml:"rooms" mapstructure:"rooms"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	LLM     LLMConfig     `yaml:"llm" mapstructure:"llm"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// PathsConfig locates every artifact the pipeline reads or writes.
// All stages communicate exclusively through these paths; there is no
// database.
type PathsConfig struct {
	KnowledgeRoot string   `yaml:"knowledge_root" mapstructure:"knowledge_root"` // Root of extracted signal documents
	VaultDir      string   `yaml:"vault_dir" mapstructure:"vault_dir"`           // manufacturer/model documentation vault
	SearchRoots   []string `yaml:"search_roots" mapstructure:"search_roots"`     // Local trees searched for documentation
	ReportsDir    string   `yaml:"reports_dir" mapstructure:"reports_dir"`       // Frequency table, summary, BOM outputs
	PackagesDir   string   `yaml:"packages_dir" mapstructure:"packages_dir"`     // Per-archetype room packages
	QueueFile     string   `yaml:"queue_file" mapstructure:"queue_file"`         // Persistent fetch queue CSV
	RoomMapFile   string   `yaml:"room_map_file" mapstructure:"room_map_file"`   // External sku/archetype mapping CSV
}

// ExtractConfig bounds signal extraction output.
type ExtractConfig struct {
	MaxTokens   int `yaml:"max_tokens" mapstructure:"max_tokens"`
	MaxHeadings int `yaml:"max_headings" mapstructure:"max_headings"`
}

// QueueConfig bounds fetch-queue build and processing.
type QueueConfig struct {
	MinCount  int `yaml:"min_count" mapstructure:"min_count"`   // Minimum occurrences to queue a SKU
	MaxRows   int `yaml:"max_rows" mapstructure:"max_rows"`     // Queue build cap
	BatchSize int `yaml:"batch_size" mapstructure:"batch_size"` // Rows examined per process run
	MaxHits   int `yaml:"max_hits" mapstructure:"max_hits"`     // Local search results per SKU
}

// RoomsConfig bounds room-package building.
type RoomsConfig struct {
	MinOccurrences int `yaml:"min_occurrences" mapstructure:"min_occurrences"` // Archetype emission threshold
	TopSKUs        int `yaml:"top_skus" mapstructure:"top_skus"`               // Frequency table cap
}

// ReportConfig bounds report rendering.
type ReportConfig struct {
	SummaryTop int `yaml:"summary_top" mapstructure:"summary_top"` // Items shown in the condensed summary
}

// LLMConfig configures the optional executive-summary generation.
// It never affects extraction, classification, or counts.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "ollama", "" = disabled
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults. Derived paths hang off the
// knowledge root so a single flag relocates the whole artifact tree.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			KnowledgeRoot: "./knowledge",
			VaultDir:      "./vault",
			SearchRoots:   []string{"./docs", "./downloads"},
			ReportsDir:    "./knowledge/_reports",
			PackagesDir:   "./knowledge/_reports/room_packages",
			QueueFile:     "./knowledge/_reports/fetch_queue.csv",
			RoomMapFile:   "./knowledge/room_map.csv",
		},
		Extract: ExtractConfig{
			MaxTokens:   400,
			MaxHeadings: 200,
		},
		Queue: QueueConfig{
			MinCount:  2,
			MaxRows:   200,
			BatchSize: 100,
			MaxHits:   10,
		},
		Rooms: RoomsConfig{
			MinOccurrences: 3,
			TopSKUs:        20,
		},
		Report: ReportConfig{
			SummaryTop: 300,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
