// Package export resolves a single project's SKUs against curated metadata
// and room packages, producing an import-ready bill of materials.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mearley24/AI-Server-sub001/internal/logger"
	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/normalize"
)

// Exporter builds bill-of-materials line sets for one project at a time.
// Proposal export deliberately favors curated room-mapping metadata over the
// aggregator's heuristic guesses; the two classification paths stay separate.
type Exporter struct {
	packagesDir string
	roomCache   *gocache.Cache // SKU key → resolved room, per run
}

// NewExporter creates an Exporter reading room packages from packagesDir.
func NewExporter(packagesDir string) *Exporter {
	return &Exporter{
		packagesDir: packagesDir,
		roomCache:   gocache.New(10*time.Minute, 15*time.Minute),
	}
}

type meta struct {
	manufacturer string
	category     string
}

// Export collects every signal record whose source path contains the project
// name case-insensitively, unions their tokens into per-SKU quantities,
// resolves manufacturer/category from the room-mapping metadata and room from
// the package artifacts, and returns lines sorted by descending quantity.
func (e *Exporter) Export(project string, recs []model.SignalRecord, roomMap []model.RoomMapRow) ([]model.BOMLine, error) {
	if strings.TrimSpace(project) == "" {
		return nil, fmt.Errorf("project name is required")
	}
	needle := strings.ToLower(project)

	quantities := make(map[string]int)
	matched := 0
	for _, rec := range recs {
		if !strings.Contains(strings.ToLower(rec.SourceTxt), needle) {
			continue
		}
		matched++
		for _, raw := range rec.Models {
			key := normalize.Key(raw)
			if key == "" {
				continue
			}
			quantities[key]++
		}
	}
	logger.Info("project %q matched %d signal records, %d distinct SKUs", project, matched, len(quantities))

	metadata := resolveMetadata(roomMap)

	lines := make([]model.BOMLine, 0, len(quantities))
	for key, qty := range quantities {
		m, ok := metadata[key]
		if !ok {
			m = meta{manufacturer: model.UnknownLabel, category: model.UnknownLabel}
		}
		lines = append(lines, model.BOMLine{
			Model:        key,
			Manufacturer: m.manufacturer,
			Category:     m.category,
			Quantity:     qty,
			Room:         e.resolveRoom(key),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Quantity != lines[j].Quantity {
			return lines[i].Quantity > lines[j].Quantity
		}
		return lines[i].Model < lines[j].Model
	})
	return lines, nil
}

// resolveMetadata merges room-map rows per SKU key. A later row upgrades an
// "Unknown" field to a known value but never downgrades a known one.
func resolveMetadata(roomMap []model.RoomMapRow) map[string]meta {
	out := make(map[string]meta)
	for _, row := range roomMap {
		if row.SKU == "" {
			continue
		}
		key := normalize.Key(row.SKU)

		m, ok := out[key]
		if !ok {
			m = meta{manufacturer: model.UnknownLabel, category: model.UnknownLabel}
		}
		if known(row.Manufacturer) && !known(m.manufacturer) {
			m.manufacturer = row.Manufacturer
		}
		if known(row.Category) && !known(m.category) {
			m.category = row.Category
		}
		out[key] = m
	}
	return out
}

func known(v string) bool {
	return v != "" && v != model.UnknownLabel
}

// resolveRoom scans the room-package artifacts for the first table row
// containing the SKU; the first match wins and is cached for the run.
func (e *Exporter) resolveRoom(key string) string {
	if hit, found := e.roomCache.Get(key); found {
		return hit.(string)
	}

	room := model.UnknownLabel
	entries, err := os.ReadDir(e.packagesDir)
	if err == nil {
		names := make([]string, 0, len(entries))
		for _, ent := range entries {
			if !ent.IsDir() && strings.HasSuffix(ent.Name(), ".md") {
				names = append(names, ent.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			archetype, skus := readPackage(filepath.Join(e.packagesDir, name))
			if archetype == "" {
				continue
			}
			if _, ok := skus[key]; ok {
				room = archetype
				break
			}
		}
	}

	e.roomCache.Set(key, room, gocache.DefaultExpiration)
	return room
}

// readPackage parses one package artifact: the first heading is the archetype,
// table rows carry the SKUs.
func readPackage(path string) (string, map[string]struct{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("read package %s: %v", path, err)
		return "", nil
	}

	archetype := ""
	skus := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if archetype == "" && strings.HasPrefix(line, "# ") {
			archetype = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			continue
		}
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		if len(cells) < 2 {
			continue
		}
		sku := strings.TrimSpace(cells[0])
		if sku == "" || sku == "Model/SKU" || strings.HasPrefix(sku, "---") {
			continue
		}
		skus[strings.ToUpper(sku)] = struct{}{}
	}
	return archetype, skus
}
