// Package store wraps the filesystem-as-database layout: JSON signal records,
// CSV artifacts, and the progress log. Every full-file overwrite goes through
// one atomic write primitive so a crash cannot leave a truncated artifact.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mearley24/AI-Server-sub001/internal/logger"
	"github.com/mearley24/AI-Server-sub001/internal/model"
)

// signalSuffix marks a signal-record file next to its raw source document.
const signalSuffix = ".signals.json"

// internalDirs under the knowledge root hold pipeline outputs, never inputs.
var internalDirs = map[string]struct{}{
	"_reports": {},
	"_logs":    {},
}

// Store is the artifact repository for one knowledge root.
type Store struct {
	root string
}

// New creates a Store for the given knowledge root.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the knowledge root path.
func (s *Store) Root() string {
	return s.root
}

// RawDoc is one raw text document awaiting extraction.
type RawDoc struct {
	Path   string
	Origin model.Origin
}

// RawDocuments walks the knowledge root for raw text documents, grouped by
// their origin subdirectory. Pipeline-internal directories are skipped.
// A missing root degrades to an empty set.
func (s *Store) RawDocuments() ([]RawDoc, error) {
	var docs []RawDoc

	err := filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return filepath.SkipAll
			}
			logger.Warn("walk %s: %v", path, err)
			return nil
		}
		if info.IsDir() {
			if _, internal := internalDirs[info.Name()]; internal {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".txt") {
			return nil
		}
		docs = append(docs, RawDoc{Path: path, Origin: s.originOf(path)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk knowledge root: %w", err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// originOf derives the extraction origin from the document's top-level
// subdirectory under the knowledge root.
func (s *Store) originOf(path string) model.Origin {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return model.OriginFile
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return model.OriginFile
	}
	return model.OriginForDir(parts[0])
}

// SignalPath returns the record path for a raw document: a sibling JSON file.
func SignalPath(sourcePath string) string {
	return strings.TrimSuffix(sourcePath, ".txt") + signalSuffix
}

// SaveSignalRecord writes the record for its source document, replacing any
// prior record outright.
func (s *Store) SaveSignalRecord(rec model.SignalRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal signal record: %w", err)
	}
	return WriteFileAtomic(SignalPath(rec.SourceTxt), data)
}

// LoadSignalRecords walks the knowledge root for signal records. Malformed or
// unreadable records are skipped with a warning; a missing root degrades to an
// empty set. Records are returned in path order for determinism.
func (s *Store) LoadSignalRecords() ([]model.SignalRecord, error) {
	var paths []string

	err := filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return filepath.SkipAll
			}
			logger.Warn("walk %s: %v", path, err)
			return nil
		}
		if info.IsDir() {
			if _, internal := internalDirs[info.Name()]; internal {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk knowledge root: %w", err)
	}

	sort.Strings(paths)

	var recs []model.SignalRecord
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("read %s: %v", path, err)
			continue
		}
		var rec model.SignalRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			logger.Warn("skip malformed record %s: %v", path, err)
			continue
		}
		if rec.SourceTxt == "" {
			rec.SourceTxt = strings.TrimSuffix(path, signalSuffix)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// OriginOf exposes origin derivation for callers that log per-origin counts.
func (s *Store) OriginOf(sourcePath string) model.Origin {
	return s.originOf(sourcePath)
}

// AppendLog appends one timestamped progress line to the pipeline log.
func (s *Store) AppendLog(line string) error {
	dir := filepath.Join(s.root, "_logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "pipeline.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s %s\n", time.Now().UTC().Format(time.RFC3339), line)
	return err
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over the target only on success.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
