package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

func writePackage(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExport_ProjectScenario(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, "Theater.md",
		"# Theater\n\n3 combined occurrences.\n\n| Model/SKU | Count |\n|---|---|\n| CORE3 | 2 |\n| RA2-SELECT | 1 |\n")

	e := NewExporter(dir)

	recs := []model.SignalRecord{
		{SourceTxt: "proposals/Smith-Residence/proposal.txt", Models: []string{"CORE3", "RA2-SELECT"}},
		{SourceTxt: "manuals/smith-residence/manual.txt", Models: []string{"core3"}},
		{SourceTxt: "proposals/Jones-Lake/proposal.txt", Models: []string{"CORE3"}},
	}
	roomMap := []model.RoomMapRow{
		{SKU: "CORE3", Archetype: "Theater", Manufacturer: "QSC", Category: "Audio Processor"},
	}

	lines, err := e.Export("smith", recs, roomMap)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	core := lines[0]
	if core.Model != "CORE3" || core.Quantity != 2 {
		t.Errorf("line[0] = %s/%d, want CORE3/2", core.Model, core.Quantity)
	}
	if core.Manufacturer != "QSC" || core.Category != "Audio Processor" {
		t.Errorf("CORE3 metadata = %s/%s, want curated QSC/Audio Processor", core.Manufacturer, core.Category)
	}
	if core.Room != "Theater" {
		t.Errorf("CORE3 room = %q, want Theater", core.Room)
	}

	ra2 := lines[1]
	if ra2.Model != "RA2-SELECT" || ra2.Quantity != 1 {
		t.Errorf("line[1] = %s/%d, want RA2-SELECT/1", ra2.Model, ra2.Quantity)
	}
	// Not in the room map, but present in a package table.
	if ra2.Manufacturer != model.UnknownLabel || ra2.Category != model.UnknownLabel {
		t.Errorf("RA2-SELECT metadata = %s/%s, want Unknown/Unknown", ra2.Manufacturer, ra2.Category)
	}
	if ra2.Room != "Theater" {
		t.Errorf("RA2-SELECT room = %q, want Theater", ra2.Room)
	}
}

func TestExport_RequiresProject(t *testing.T) {
	e := NewExporter(t.TempDir())
	if _, err := e.Export("  ", nil, nil); err == nil {
		t.Error("expected error for blank project name")
	}
}

func TestExport_NoMatches(t *testing.T) {
	e := NewExporter(t.TempDir())
	recs := []model.SignalRecord{
		{SourceTxt: "proposals/jones/proposal.txt", Models: []string{"CORE3"}},
	}
	lines, err := e.Export("smith", recs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestResolveMetadata_UpgradeNeverDowngrade(t *testing.T) {
	rows := []model.RoomMapRow{
		{SKU: "CORE3", Manufacturer: model.UnknownLabel, Category: "Audio Processor"},
		{SKU: "CORE3", Manufacturer: "QSC", Category: model.UnknownLabel},
		{SKU: "CORE3", Manufacturer: "SomeoneElse", Category: "Other"},
	}

	m := resolveMetadata(rows)["CORE3"]
	if m.manufacturer != "QSC" {
		t.Errorf("manufacturer = %q, want first known value QSC", m.manufacturer)
	}
	if m.category != "Audio Processor" {
		t.Errorf("category = %q, want first known value Audio Processor", m.category)
	}
}

func TestResolveRoom_FirstPackageWins(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, "Bedroom.md",
		"# Bedroom\n\n| Model/SKU | Count |\n|---|---|\n| BEAM2 | 1 |\n")
	writePackage(t, dir, "Theater.md",
		"# Theater\n\n| Model/SKU | Count |\n|---|---|\n| BEAM2 | 4 |\n")

	e := NewExporter(dir)
	if got := e.resolveRoom("BEAM2"); got != "Bedroom" {
		t.Errorf("room = %q, want first package in name order (Bedroom)", got)
	}
	if got := e.resolveRoom("CORE3"); got != model.UnknownLabel {
		t.Errorf("unmapped SKU room = %q, want %s", got, model.UnknownLabel)
	}
}
