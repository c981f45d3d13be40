package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mearley24/AI-Server-sub001/internal/logger"
	"github.com/mearley24/AI-Server-sub001/internal/model"
)

// queueHeader is the persisted queue schema. Column order is part of the
// contract with whoever works the queue by hand.
var queueHeader = []string{
	"manufacturer_guess", "model_sku", "category_guess",
	"priority_score", "status", "notes",
}

// SaveQueue rewrites the entire queue file, preserving row order.
func SaveQueue(path string, rows []model.QueueRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(queueHeader); err != nil {
		return fmt.Errorf("write queue header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Manufacturer, r.SKU, r.Category,
			strconv.Itoa(r.Score), string(r.Status), r.Notes,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write queue row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush queue: %w", err)
	}

	return WriteFileAtomic(path, buf.Bytes())
}

// LoadQueue reads the persisted queue. A missing file degrades to an empty
// queue; malformed rows are skipped with a warning.
func LoadQueue(path string) ([]model.QueueRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read queue: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse queue: %w", err)
	}

	var rows []model.QueueRow
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == queueHeader[0] {
			continue // header
		}
		if len(rec) < 6 {
			logger.Warn("skip short queue row %d in %s", i+1, path)
			continue
		}
		score, err := strconv.Atoi(rec[3])
		if err != nil {
			logger.Warn("skip queue row %d in %s: bad score %q", i+1, path, rec[3])
			continue
		}
		rows = append(rows, model.QueueRow{
			Manufacturer: rec[0],
			SKU:          rec[1],
			Category:     rec[2],
			Score:        score,
			Status:       model.QueueStatus(rec[4]),
			Notes:        rec[5],
		})
	}
	return rows, nil
}

// LoadRoomMap reads the external sku/archetype mapping. Columns are resolved
// by header name; manufacturer and category are optional. A missing file
// degrades to an empty set.
func LoadRoomMap(path string) ([]model.RoomMapRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read room map: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse room map: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	skuIdx, ok := col["sku"]
	archIdx, ok2 := col["archetype"]
	if !ok || !ok2 {
		return nil, fmt.Errorf("room map %s: missing sku/archetype columns", path)
	}

	field := func(rec []string, idx int, present bool) string {
		if !present || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	mfrIdx, hasMfr := col["manufacturer"]
	catIdx, hasCat := col["category"]

	var rows []model.RoomMapRow
	for _, rec := range records[1:] {
		if skuIdx >= len(rec) || archIdx >= len(rec) {
			continue
		}
		rows = append(rows, model.RoomMapRow{
			SKU:          strings.TrimSpace(rec[skuIdx]),
			Archetype:    strings.TrimSpace(rec[archIdx]),
			Manufacturer: field(rec, mfrIdx, hasMfr),
			Category:     field(rec, catIdx, hasCat),
		})
	}
	return rows, nil
}
