package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/store"
)

// bomHeader is the line-item import schema the AV project-management platform
// expects.
var bomHeader = []string{"model", "manufacturer", "category", "quantity", "room"}

// WriteCSV writes the bill of materials as the CSV import file.
func WriteCSV(path string, lines []model.BOMLine) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(bomHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, l := range lines {
		rec := []string{l.Model, l.Manufacturer, l.Category, strconv.Itoa(l.Quantity), l.Room}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return store.WriteFileAtomic(path, buf.Bytes())
}

// WriteXLSX writes the same line set as an XLSX workbook, for importers that
// refuse plain CSV.
func WriteXLSX(path string, lines []model.BOMLine) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	const sheet = "BOM"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, name := range bomHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}

	for i, l := range lines {
		values := []any{l.Model, l.Manufacturer, l.Category, l.Quantity, l.Room}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
