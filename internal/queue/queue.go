// Package queue maintains the persistent fetch queue of SKUs lacking
// documentation: building fresh snapshots from the inventory and processing
// rows against local document trees and the vault.
package queue

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mearley24/AI-Server-sub001/internal/logger"
	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/normalize"
	"github.com/mearley24/AI-Server-sub001/internal/vault"
)

// Manager drives the fetch-queue lifecycle against one vault and a set of
// local search roots.
type Manager struct {
	vault       *vault.Vault
	searchRoots []string
	cfg         model.QueueConfig
}

// NewManager creates a queue manager.
func NewManager(v *vault.Vault, searchRoots []string, cfg model.QueueConfig) *Manager {
	return &Manager{vault: v, searchRoots: searchRoots, cfg: cfg}
}

// Build emits a fresh snapshot of todo rows: inventory items whose normalized
// key is absent from the vault and whose count meets the minimum, in inventory
// sort order, capped. The prior queue file is not consulted.
func (m *Manager) Build(items []model.InventoryItem) ([]model.QueueRow, error) {
	vaultKeys, err := m.vault.Keys()
	if err != nil {
		return nil, fmt.Errorf("vault keys: %w", err)
	}

	var rows []model.QueueRow
	for _, it := range items {
		if it.Count < m.cfg.MinCount {
			continue
		}
		if _, documented := vaultKeys[it.Key]; documented {
			continue
		}
		rows = append(rows, model.QueueRow{
			Manufacturer: it.Manufacturer,
			SKU:          it.Key,
			Category:     it.Category,
			Score:        it.Count,
			Status:       model.StatusTodo,
		})
		if len(rows) >= m.cfg.MaxRows {
			break
		}
	}
	return rows, nil
}

// ProcessStats summarizes one process run.
type ProcessStats struct {
	Examined int // todo rows worked this run
	Done     int
	Skipped  int
	Copied   int // files copied into the vault
}

// Process works the queue in place: rows already done or skipped are never
// touched, invalid SKUs become skip, vault-present entries become done, and
// otherwise the local search roots are scanned for documentation to copy in.
// Work stops after the batch cap of examined rows; the caller rewrites the
// entire queue afterward, preserving order.
func (m *Manager) Process(rows []model.QueueRow) ProcessStats {
	var stats ProcessStats

	for i := range rows {
		row := &rows[i]
		if row.Terminal() {
			continue
		}
		if stats.Examined >= m.cfg.BatchSize {
			break
		}
		stats.Examined++

		if !ValidSKU(row.SKU) {
			row.Status = model.StatusSkip
			row.Notes = "invalid sku"
			stats.Skipped++
			continue
		}

		key := normalize.Key(row.SKU)
		if m.vault.Has(row.Manufacturer, key) {
			row.Status = model.StatusDone
			row.Notes = "already in vault"
			stats.Done++
			continue
		}

		hits := m.findLocalDocs(row.SKU)
		if len(hits) == 0 {
			row.Notes = "not found locally"
			continue
		}

		copied := 0
		failed := false
		for _, hit := range hits {
			ok, err := m.vault.CopyIn(row.Manufacturer, key, hit)
			if err != nil {
				logger.Warn("copy %s for %s: %v", hit, row.SKU, err)
				row.Notes = fmt.Sprintf("copy failed: %v", err)
				failed = true
				break
			}
			if ok {
				copied++
			}
		}
		if failed {
			continue // stays todo for the next run
		}

		row.Status = model.StatusDone
		row.Notes = fmt.Sprintf("copied %d file(s)", copied)
		stats.Done++
		stats.Copied += copied
	}

	return stats
}

// ValidSKU is the data-validity check applied before any retrieval work:
// a SKU must contain a digit, be at most 40 characters, and carry fewer than
// 6 hyphens.
func ValidSKU(sku string) bool {
	if len(sku) > 40 {
		return false
	}
	if !strings.ContainsAny(sku, "0123456789") {
		return false
	}
	return strings.Count(sku, "-") < 6
}

// findLocalDocs searches the configured roots recursively for files whose name
// contains the SKU case-insensitively, capped at MaxHits.
func (m *Manager) findLocalDocs(sku string) []string {
	needle := strings.ToLower(sku)
	var hits []string

	for _, root := range m.searchRoots {
		if len(hits) >= m.cfg.MaxHits {
			break
		}
		_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // unreadable subtrees are not fatal to a search
			}
			if info.IsDir() {
				return nil
			}
			if strings.Contains(strings.ToLower(info.Name()), needle) {
				hits = append(hits, path)
				if len(hits) >= m.cfg.MaxHits {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
	return hits
}
