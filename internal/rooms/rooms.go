// Package rooms aggregates the external SKU→room mapping into per-archetype
// equipment packages.
package rooms

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/normalize"
	"github.com/mearley24/AI-Server-sub001/internal/store"
)

// Builder groups room-map rows into packages and renders them as markdown.
type Builder struct {
	dir string
	cfg model.RoomsConfig
}

// NewBuilder creates a Builder writing into the given packages directory.
func NewBuilder(dir string, cfg model.RoomsConfig) *Builder {
	return &Builder{dir: dir, cfg: cfg}
}

// BuildPackages groups rows by archetype and counts SKU frequency. Rows with
// a missing SKU or an "Unknown" archetype are skipped. Only archetypes whose
// combined occurrence count meets the minimum are emitted; each package keeps
// the top SKUs by descending count (ties alphabetical). Packages are returned
// in archetype order.
func (b *Builder) BuildPackages(rows []model.RoomMapRow) []model.RoomPackage {
	counts := make(map[string]map[string]int)

	for _, row := range rows {
		if row.SKU == "" || row.Archetype == "" || row.Archetype == model.UnknownLabel {
			continue
		}
		key := normalize.Key(row.SKU)
		if counts[row.Archetype] == nil {
			counts[row.Archetype] = make(map[string]int)
		}
		counts[row.Archetype][key]++
	}

	var pkgs []model.RoomPackage
	for archetype, skus := range counts {
		total := 0
		table := make([]model.SKUCount, 0, len(skus))
		for sku, n := range skus {
			total += n
			table = append(table, model.SKUCount{SKU: sku, Count: n})
		}
		if total < b.cfg.MinOccurrences {
			continue
		}
		sort.Slice(table, func(i, j int) bool {
			if table[i].Count != table[j].Count {
				return table[i].Count > table[j].Count
			}
			return table[i].SKU < table[j].SKU
		})
		if len(table) > b.cfg.TopSKUs {
			table = table[:b.cfg.TopSKUs]
		}
		pkgs = append(pkgs, model.RoomPackage{Archetype: archetype, Total: total, SKUs: table})
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Archetype < pkgs[j].Archetype })
	return pkgs
}

// RenderMarkdown renders one package as a markdown table. The first heading
// carries the archetype name; the proposal exporter reads it back for room
// resolution.
func RenderMarkdown(pkg model.RoomPackage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", pkg.Archetype)
	fmt.Fprintf(&b, "%d combined occurrences.\n\n", pkg.Total)
	b.WriteString("| Model/SKU | Count |\n")
	b.WriteString("|---|---|\n")
	for _, sc := range pkg.SKUs {
		fmt.Fprintf(&b, "| %s | %d |\n", sc.SKU, sc.Count)
	}
	return b.String()
}

// WritePackages writes one markdown file per package.
func (b *Builder) WritePackages(pkgs []model.RoomPackage) error {
	for _, pkg := range pkgs {
		path := filepath.Join(b.dir, FileName(pkg.Archetype))
		if err := store.WriteFileAtomic(path, []byte(RenderMarkdown(pkg))); err != nil {
			return fmt.Errorf("write package %s: %w", pkg.Archetype, err)
		}
	}
	return nil
}

// FileName derives a package filename from the archetype, with path-separator
// characters replaced.
func FileName(archetype string) string {
	name := strings.ReplaceAll(archetype, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, " ", "-")
	return name + ".md"
}
