package rooms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

func testBuilder(dir string) *Builder {
	return NewBuilder(dir, model.RoomsConfig{MinOccurrences: 3, TopSKUs: 20})
}

func TestBuildPackages_Threshold(t *testing.T) {
	b := testBuilder(t.TempDir())

	rows := []model.RoomMapRow{
		{SKU: "CORE3", Archetype: "Theater"},
		{SKU: "core3", Archetype: "Theater"},
		{SKU: "RA2-SELECT", Archetype: "Theater"},
		{SKU: "BEAM2", Archetype: "Patio"}, // total 1, below minimum
	}

	pkgs := b.BuildPackages(rows)
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}
	pkg := pkgs[0]
	if pkg.Archetype != "Theater" || pkg.Total != 3 {
		t.Errorf("package = %s/%d, want Theater/3", pkg.Archetype, pkg.Total)
	}
	if len(pkg.SKUs) != 2 {
		t.Fatalf("expected 2 SKUs, got %d", len(pkg.SKUs))
	}
	if pkg.SKUs[0].SKU != "CORE3" || pkg.SKUs[0].Count != 2 {
		t.Errorf("top SKU = %s/%d, want CORE3/2", pkg.SKUs[0].SKU, pkg.SKUs[0].Count)
	}
	if pkg.SKUs[1].SKU != "RA2-SELECT" {
		t.Errorf("second SKU = %s, want RA2-SELECT", pkg.SKUs[1].SKU)
	}
}

func TestBuildPackages_SkipsUnmappableRows(t *testing.T) {
	b := testBuilder(t.TempDir())

	rows := []model.RoomMapRow{
		{SKU: "", Archetype: "Theater"},
		{SKU: "CORE3", Archetype: ""},
		{SKU: "CORE3", Archetype: model.UnknownLabel},
	}
	if pkgs := b.BuildPackages(rows); len(pkgs) != 0 {
		t.Errorf("expected no packages, got %d", len(pkgs))
	}
}

func TestBuildPackages_TiesAndCap(t *testing.T) {
	b := NewBuilder(t.TempDir(), model.RoomsConfig{MinOccurrences: 1, TopSKUs: 2})

	rows := []model.RoomMapRow{
		{SKU: "ZED-1", Archetype: "Office"},
		{SKU: "ALPHA-1", Archetype: "Office"},
		{SKU: "MID-1", Archetype: "Office"},
	}
	pkgs := b.BuildPackages(rows)
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}
	skus := pkgs[0].SKUs
	if len(skus) != 2 {
		t.Fatalf("expected top-SKU cap of 2, got %d", len(skus))
	}
	// Equal counts resolve alphabetically.
	if skus[0].SKU != "ALPHA-1" || skus[1].SKU != "MID-1" {
		t.Errorf("tie order = %s, %s; want ALPHA-1, MID-1", skus[0].SKU, skus[1].SKU)
	}
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(model.RoomPackage{
		Archetype: "Theater",
		Total:     3,
		SKUs: []model.SKUCount{
			{SKU: "CORE3", Count: 2},
			{SKU: "RA2-SELECT", Count: 1},
		},
	})

	if !strings.HasPrefix(md, "# Theater\n") {
		t.Errorf("missing archetype heading:\n%s", md)
	}
	if !strings.Contains(md, "| CORE3 | 2 |") || !strings.Contains(md, "| RA2-SELECT | 1 |") {
		t.Errorf("missing table rows:\n%s", md)
	}
	if strings.Index(md, "CORE3") > strings.Index(md, "RA2-SELECT") {
		t.Error("rows out of order")
	}
}

func TestWritePackages(t *testing.T) {
	dir := t.TempDir()
	b := testBuilder(dir)

	pkgs := []model.RoomPackage{
		{Archetype: "Media Room", Total: 3, SKUs: []model.SKUCount{{SKU: "CORE3", Count: 3}}},
	}
	if err := b.WritePackages(pkgs); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Media-Room.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# Media Room") {
		t.Errorf("unexpected content:\n%s", data)
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Theater", "Theater.md"},
		{"Media Room", "Media-Room.md"},
		{"Gym/Spa", "Gym_Spa.md"},
	}
	for _, c := range cases {
		if got := FileName(c.in); got != c.want {
			t.Errorf("FileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
