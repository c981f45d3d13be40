// Package pipeline orchestrates the knowledge stages: signal extraction,
// inventory aggregation, report rendering, fetch-queue work, room packages,
// and proposal export. All stages are sequential batch jobs communicating
// through artifacts on disk; callers serialize concurrent runs.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mearley24/AI-Server-sub001/internal/aggregate"
	"github.com/mearley24/AI-Server-sub001/internal/classify"
	"github.com/mearley24/AI-Server-sub001/internal/export"
	"github.com/mearley24/AI-Server-sub001/internal/extract"
	"github.com/mearley24/AI-Server-sub001/internal/llm"
	"github.com/mearley24/AI-Server-sub001/internal/logger"
	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/queue"
	"github.com/mearley24/AI-Server-sub001/internal/report"
	"github.com/mearley24/AI-Server-sub001/internal/rooms"
	"github.com/mearley24/AI-Server-sub001/internal/store"
	"github.com/mearley24/AI-Server-sub001/internal/vault"
)

// Pipeline wires the stages together for one configuration.
type Pipeline struct {
	cfg        *model.Config
	store      *store.Store
	extractor  *extract.Extractor
	aggregator *aggregate.Aggregator
	reporter   *report.Writer
	vault      *vault.Vault
	queue      *queue.Manager
	rooms      *rooms.Builder
	exporter   *export.Exporter
	summarizer *llm.Summarizer // Optional LLM summarizer (nil-safe, disabled by default)
}

// New creates a pipeline with the given configuration.
func New(cfg *model.Config) *Pipeline {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			logger.Warn("failed to initialize LLM provider: %v", err)
		} else {
			summarizer = s
		}
	}

	v := vault.New(cfg.Paths.VaultDir)

	return &Pipeline{
		cfg:        cfg,
		store:      store.New(cfg.Paths.KnowledgeRoot),
		extractor:  extract.NewExtractor(cfg.Extract),
		aggregator: aggregate.New(classify.Default()),
		reporter:   report.NewWriter(cfg.Paths.ReportsDir, cfg.Report),
		vault:      v,
		queue:      queue.NewManager(v, cfg.Paths.SearchRoots, cfg.Queue),
		rooms:      rooms.NewBuilder(cfg.Paths.PackagesDir, cfg.Rooms),
		exporter:   export.NewExporter(cfg.Paths.PackagesDir),
		summarizer: summarizer,
	}
}

// ExtractAll runs signal extraction over every raw document under the
// knowledge root, replacing each document's record. Unreadable documents are
// skipped with a warning. Returns the number of records written.
func (p *Pipeline) ExtractAll() (int, error) {
	docs, err := p.store.RawDocuments()
	if err != nil {
		return 0, fmt.Errorf("list documents: %w", err)
	}

	written := 0
	for _, doc := range docs {
		data, err := os.ReadFile(doc.Path)
		if err != nil {
			logger.Warn("skip unreadable %s: %v", doc.Path, err)
			continue
		}

		rec := p.extractor.Extract(string(data), doc.Path)
		if err := p.store.SaveSignalRecord(rec); err != nil {
			logger.Warn("save record for %s: %v", doc.Path, err)
			continue
		}
		written++

		logger.Debug("extracted %s (%s): %d tokens, %d headings",
			doc.Path, doc.Origin, len(rec.Models), len(rec.Headings))
		if err := p.store.AppendLog(fmt.Sprintf("extract %s tokens=%d headings=%d",
			doc.Path, len(rec.Models), len(rec.Headings))); err != nil {
			logger.Warn("progress log: %v", err)
		}
	}
	return written, nil
}

// Aggregate loads all signal records and recomputes the inventory outright.
func (p *Pipeline) Aggregate() ([]model.InventoryItem, error) {
	recs, err := p.store.LoadSignalRecords()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	if logger.IsVerbose() {
		perOrigin := make(map[model.Origin]int)
		for _, rec := range recs {
			perOrigin[p.store.OriginOf(rec.SourceTxt)]++
		}
		for origin, n := range perOrigin {
			logger.Debug("records from %s: %d", origin, n)
		}
	}

	items := p.aggregator.Aggregate(recs)
	logger.Info("aggregated %d records into %d items", len(recs), len(items))
	return items, nil
}

// WriteReports renders the frequency table and the condensed summary.
func (p *Pipeline) WriteReports(items []model.InventoryItem) error {
	if err := p.reporter.WriteFrequencyCSV(items); err != nil {
		return fmt.Errorf("frequency table: %w", err)
	}
	if err := p.reporter.WriteSummaryMD(items); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return p.store.AppendLog(fmt.Sprintf("reports items=%d", len(items)))
}

// BuildQueue emits a fresh fetch-queue snapshot and overwrites the queue file.
func (p *Pipeline) BuildQueue(items []model.InventoryItem) (int, error) {
	rows, err := p.queue.Build(items)
	if err != nil {
		return 0, fmt.Errorf("build queue: %w", err)
	}
	if err := store.SaveQueue(p.cfg.Paths.QueueFile, rows); err != nil {
		return 0, fmt.Errorf("save queue: %w", err)
	}
	if err := p.store.AppendLog(fmt.Sprintf("queue build rows=%d", len(rows))); err != nil {
		logger.Warn("progress log: %v", err)
	}
	return len(rows), nil
}

// ProcessQueue works the persisted queue and rewrites it in full, untouched
// rows included, preserving order.
func (p *Pipeline) ProcessQueue() (queue.ProcessStats, error) {
	rows, err := store.LoadQueue(p.cfg.Paths.QueueFile)
	if err != nil {
		return queue.ProcessStats{}, fmt.Errorf("load queue: %w", err)
	}

	stats := p.queue.Process(rows)

	if err := store.SaveQueue(p.cfg.Paths.QueueFile, rows); err != nil {
		return stats, fmt.Errorf("save queue: %w", err)
	}
	if err := p.store.AppendLog(fmt.Sprintf("queue process examined=%d done=%d skipped=%d copied=%d",
		stats.Examined, stats.Done, stats.Skipped, stats.Copied)); err != nil {
		logger.Warn("progress log: %v", err)
	}
	return stats, nil
}

// BuildRooms aggregates the room mapping into per-archetype packages.
// A missing mapping file degrades to zero packages.
func (p *Pipeline) BuildRooms() (int, error) {
	rows, err := store.LoadRoomMap(p.cfg.Paths.RoomMapFile)
	if err != nil {
		return 0, fmt.Errorf("load room map: %w", err)
	}

	pkgs := p.rooms.BuildPackages(rows)
	if err := p.rooms.WritePackages(pkgs); err != nil {
		return 0, err
	}
	if err := p.store.AppendLog(fmt.Sprintf("rooms packages=%d", len(pkgs))); err != nil {
		logger.Warn("progress log: %v", err)
	}
	return len(pkgs), nil
}

// ExportProposal builds the bill of materials for one project and writes the
// CSV and XLSX import files. Returns the line count and the CSV path.
func (p *Pipeline) ExportProposal(project string) (int, string, error) {
	recs, err := p.store.LoadSignalRecords()
	if err != nil {
		return 0, "", fmt.Errorf("load records: %w", err)
	}
	roomMap, err := store.LoadRoomMap(p.cfg.Paths.RoomMapFile)
	if err != nil {
		return 0, "", fmt.Errorf("load room map: %w", err)
	}

	lines, err := p.exporter.Export(project, recs, roomMap)
	if err != nil {
		return 0, "", err
	}

	base := filepath.Join(p.cfg.Paths.ReportsDir, "bom_"+Slug(project))
	csvPath := base + ".csv"
	if err := export.WriteCSV(csvPath, lines); err != nil {
		return 0, "", fmt.Errorf("write bom csv: %w", err)
	}
	if err := export.WriteXLSX(base+".xlsx", lines); err != nil {
		return 0, "", fmt.Errorf("write bom xlsx: %w", err)
	}
	if err := p.store.AppendLog(fmt.Sprintf("export project=%q lines=%d", project, len(lines))); err != nil {
		logger.Warn("progress log: %v", err)
	}
	return len(lines), csvPath, nil
}

// Summarize writes the optional LLM executive summary next to the reports.
// A disabled summarizer is a no-op; a failure is a warning, never a stage
// error.
func (p *Pipeline) Summarize(ctx context.Context, items []model.InventoryItem, queueRows int) {
	if p.summarizer == nil || !p.summarizer.IsEnabled() {
		return
	}

	md, err := p.summarizer.GenerateSummary(ctx, items, queueRows)
	if err != nil {
		logger.Warn("LLM summary generation failed: %v", err)
		return
	}

	path := filepath.Join(p.cfg.Paths.ReportsDir, "inventory_summary.llm.md")
	if err := store.WriteFileAtomic(path, []byte(md)); err != nil {
		logger.Warn("write LLM summary: %v", err)
		return
	}
	logger.Info("wrote LLM summary: %s", path)
}

// Run sequences the full pipeline: extract, aggregate, reports, queue build,
// queue process, room packages, optional summary.
func (p *Pipeline) Run(ctx context.Context) error {
	logger.Section("extract")
	n, err := p.ExtractAll()
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	logger.Info("extracted %d records", n)

	logger.Section("aggregate")
	items, err := p.Aggregate()
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	logger.Section("reports")
	if err := p.WriteReports(items); err != nil {
		return fmt.Errorf("reports: %w", err)
	}

	logger.Section("queue")
	queued, err := p.BuildQueue(items)
	if err != nil {
		return fmt.Errorf("queue build: %w", err)
	}
	stats, err := p.ProcessQueue()
	if err != nil {
		return fmt.Errorf("queue process: %w", err)
	}
	logger.Info("queue: %d rows, examined %d, done %d, copied %d files",
		queued, stats.Examined, stats.Done, stats.Copied)

	logger.Section("rooms")
	pkgs, err := p.BuildRooms()
	if err != nil {
		return fmt.Errorf("rooms: %w", err)
	}
	logger.Info("wrote %d room packages", pkgs)

	p.Summarize(ctx, items, queued)
	return nil
}

// Slug makes a project name safe for a filename.
func Slug(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
