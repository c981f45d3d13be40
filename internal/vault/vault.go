// Package vault manages the canonical documentation store: a two-level
// manufacturer/model directory tree. Presence of at least one document under
// an entry is the sole existence check used for deduplication.
package vault

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Vault is the documentation store rooted at one directory. Existence checks
// are memoized per run; directory scans repeat heavily during queue work.
type Vault struct {
	root  string
	cache *gocache.Cache
}

// New creates a Vault at the given root. The root need not exist yet; a
// missing vault reads as empty.
func New(root string) *Vault {
	return &Vault{
		root:  root,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// EntryDir returns the directory for a (manufacturer, model) entry.
func (v *Vault) EntryDir(manufacturer, modelKey string) string {
	return filepath.Join(v.root, dirName(manufacturer), dirName(modelKey))
}

// Has reports whether the entry holds at least one document.
func (v *Vault) Has(manufacturer, modelKey string) bool {
	dir := v.EntryDir(manufacturer, modelKey)
	if hit, found := v.cache.Get(dir); found {
		return hit.(bool)
	}
	has := hasFiles(dir)
	v.cache.Set(dir, has, gocache.DefaultExpiration)
	return has
}

// Keys returns the set of normalized-uppercase model names that have at least
// one document, across all manufacturers. A missing vault yields an empty set.
func (v *Vault) Keys() (map[string]struct{}, error) {
	keys := make(map[string]struct{})

	makers, err := os.ReadDir(v.root)
	if err != nil {
		if os.IsNotExist(err) {
			return keys, nil
		}
		return nil, fmt.Errorf("read vault: %w", err)
	}

	for _, mk := range makers {
		if !mk.IsDir() {
			continue
		}
		models, err := os.ReadDir(filepath.Join(v.root, mk.Name()))
		if err != nil {
			continue
		}
		for _, md := range models {
			if !md.IsDir() {
				continue
			}
			if hasFiles(filepath.Join(v.root, mk.Name(), md.Name())) {
				keys[strings.ToUpper(md.Name())] = struct{}{}
			}
		}
	}
	return keys, nil
}

// CopyIn copies a document into the entry directory. Files already present by
// name are skipped; returns whether a copy happened.
func (v *Vault) CopyIn(manufacturer, modelKey, srcPath string) (bool, error) {
	dir := v.EntryDir(manufacturer, modelKey)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("create vault entry: %w", err)
	}

	dst := filepath.Join(dir, filepath.Base(srcPath))
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return false, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, fmt.Errorf("create target: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return false, fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("close target: %w", err)
	}

	v.cache.Set(dir, true, gocache.DefaultExpiration)
	return true, nil
}

// hasFiles reports whether dir contains at least one regular file.
func hasFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() {
			return true
		}
	}
	return false
}

// dirName makes a name safe as a single path element.
func dirName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "_"
	}
	return name
}
