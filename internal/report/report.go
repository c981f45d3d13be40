// Package report renders the aggregated inventory as artifacts: a full
// frequency table and a condensed human-readable summary.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/store"
)

const (
	// FrequencyFile is the full tabular export.
	FrequencyFile = "inventory_frequency.csv"
	// SummaryFile is the condensed human-readable summary.
	SummaryFile = "inventory_summary.md"
)

// Writer renders inventory artifacts into a reports directory. Items are
// expected pre-sorted (count desc, manufacturer, SKU); both artifacts preserve
// that order.
type Writer struct {
	dir        string
	summaryTop int
}

// NewWriter creates a report writer.
func NewWriter(dir string, cfg model.ReportConfig) *Writer {
	return &Writer{dir: dir, summaryTop: cfg.SummaryTop}
}

// WriteFrequencyCSV writes the full frequency table.
func (w *Writer) WriteFrequencyCSV(items []model.InventoryItem) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	header := []string{"manufacturer", "model_sku", "category", "count", "first_seen", "last_seen", "examples"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, it := range items {
		rec := []string{
			it.Manufacturer,
			it.Key,
			it.Category,
			strconv.Itoa(it.Count),
			it.FirstSeen.UTC().Format(time.RFC3339),
			it.LastSeen.UTC().Format(time.RFC3339),
			strings.Join(it.Examples, ";"),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return store.WriteFileAtomic(filepath.Join(w.dir, FrequencyFile), buf.Bytes())
}

// WriteSummaryMD writes the condensed summary, capped to the top items with a
// trailing note of how many were omitted.
func (w *Writer) WriteSummaryMD(items []model.InventoryItem) error {
	var b strings.Builder

	b.WriteString("# Equipment Inventory Summary\n\n")
	fmt.Fprintf(&b, "%d distinct items across all signal records.\n\n", len(items))
	b.WriteString("| Manufacturer | Model/SKU | Category | Count |\n")
	b.WriteString("|---|---|---|---|\n")

	shown := items
	if len(shown) > w.summaryTop {
		shown = shown[:w.summaryTop]
	}
	for _, it := range shown {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", it.Manufacturer, it.Key, it.Category, it.Count)
	}
	if omitted := len(items) - len(shown); omitted > 0 {
		fmt.Fprintf(&b, "\n_%d more items omitted; see %s for the full table._\n", omitted, FrequencyFile)
	}

	return store.WriteFileAtomic(filepath.Join(w.dir, SummaryFile), []byte(b.String()))
}
