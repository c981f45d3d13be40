package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestVault_HasRequiresFiles(t *testing.T) {
	root := t.TempDir()
	v := New(root)

	if v.Has("Lutron", "RA2-SELECT") {
		t.Error("missing entry should read as absent")
	}

	// An empty entry directory is still absent.
	if err := os.MkdirAll(filepath.Join(root, "QSC", "CORE3"), 0755); err != nil {
		t.Fatal(err)
	}
	if v.Has("QSC", "CORE3") {
		t.Error("empty entry directory should read as absent")
	}

	writeFile(t, filepath.Join(root, "Lutron", "RA2-SELECT", "datasheet.pdf"), "pdf")
	if !v.Has("Lutron", "RA2-SELECT") {
		t.Error("entry with a document should read as present")
	}
}

func TestVault_Keys(t *testing.T) {
	root := t.TempDir()
	v := New(root)

	keys, err := v.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("missing vault should yield an empty set, got %v", keys)
	}

	writeFile(t, filepath.Join(root, "Lutron", "RA2-SELECT", "manual.pdf"), "pdf")
	writeFile(t, filepath.Join(root, "QSC", "core3", "spec.pdf"), "pdf")
	if err := os.MkdirAll(filepath.Join(root, "Sonos", "BEAM2"), 0755); err != nil {
		t.Fatal(err)
	}

	keys, err = v.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := keys["RA2-SELECT"]; !ok {
		t.Error("expected RA2-SELECT in key set")
	}
	if _, ok := keys["CORE3"]; !ok {
		t.Error("expected lowercase model dir to surface as uppercase CORE3")
	}
	if _, ok := keys["BEAM2"]; ok {
		t.Error("empty entry BEAM2 should not appear in key set")
	}
}

func TestVault_CopyInSkipsByName(t *testing.T) {
	root := t.TempDir()
	src := t.TempDir()
	v := New(root)

	doc := filepath.Join(src, "RA2-SELECT-install.pdf")
	writeFile(t, doc, "first")

	copied, err := v.CopyIn("Lutron", "RA2-SELECT", doc)
	if err != nil {
		t.Fatal(err)
	}
	if !copied {
		t.Error("first copy should happen")
	}

	// Same base name again, even with different content: skipped.
	writeFile(t, doc, "second")
	copied, err = v.CopyIn("Lutron", "RA2-SELECT", doc)
	if err != nil {
		t.Fatal(err)
	}
	if copied {
		t.Error("existing target name should be skipped")
	}

	data, err := os.ReadFile(filepath.Join(v.EntryDir("Lutron", "RA2-SELECT"), "RA2-SELECT-install.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("existing file was overwritten: %q", data)
	}

	if !v.Has("Lutron", "RA2-SELECT") {
		t.Error("entry should read as present after copy")
	}
}
