package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

func sampleItems() []model.InventoryItem {
	ts := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	return []model.InventoryItem{
		{
			Key: "RA2-SELECT", Manufacturer: "Lutron", Category: "Lighting Control",
			Count: 5, FirstSeen: ts, LastSeen: ts.AddDate(0, 1, 0),
			Examples: []string{"RA2-SELECT", "RA2_SELECT"},
		},
		{
			Key: "CORE3", Manufacturer: "QSC", Category: "Audio Processor",
			Count: 2, FirstSeen: ts, LastSeen: ts,
			Examples: []string{"CORE3"},
		},
	}
}

func TestWriteFrequencyCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, model.ReportConfig{SummaryTop: 300})

	if err := w.WriteFrequencyCSV(sampleItems()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FrequencyFile))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "manufacturer,model_sku,category,count,first_seen,last_seen,examples" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Lutron,RA2-SELECT,Lighting Control,5,") {
		t.Errorf("row[0] = %q", lines[1])
	}
	if !strings.Contains(lines[1], "RA2-SELECT;RA2_SELECT") {
		t.Errorf("examples not semicolon-joined: %q", lines[1])
	}
	if !strings.Contains(lines[1], "2026-02-01T00:00:00Z") {
		t.Errorf("first_seen not RFC3339: %q", lines[1])
	}
}

func TestWriteSummaryMD_Truncation(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, model.ReportConfig{SummaryTop: 1})

	if err := w.WriteSummaryMD(sampleItems()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	if err != nil {
		t.Fatal(err)
	}
	md := string(data)

	if !strings.Contains(md, "| Lutron | RA2-SELECT | Lighting Control | 5 |") {
		t.Errorf("missing top row:\n%s", md)
	}
	if strings.Contains(md, "CORE3") {
		t.Errorf("row past the cap should be omitted:\n%s", md)
	}
	if !strings.Contains(md, "1 more items omitted") {
		t.Errorf("missing omission note:\n%s", md)
	}
}

func TestWriteSummaryMD_NoTruncationNote(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, model.ReportConfig{SummaryTop: 300})

	if err := w.WriteSummaryMD(sampleItems()); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, SummaryFile))
	if strings.Contains(string(data), "omitted") {
		t.Errorf("unexpected omission note:\n%s", data)
	}
	if !strings.Contains(string(data), "2 distinct items") {
		t.Errorf("missing item count:\n%s", data)
	}
}
