package classify

import (
	"testing"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

func TestClassifier_FirstMatchWins(t *testing.T) {
	makers := []Rule{
		MustRule("First", `^AB`),
		MustRule("Second", `^ABC`), // Never reachable for ABC inputs
	}
	c := New(makers, nil)

	if got := c.Manufacturer("ABC-100"); got != "First" {
		t.Errorf("expected pattern order to decide the winner, got %q", got)
	}

	// Same patterns, reversed order
	c = New([]Rule{makers[1], makers[0]}, nil)
	if got := c.Manufacturer("ABC-100"); got != "Second" {
		t.Errorf("expected reversed order to change the winner, got %q", got)
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := Default()
	m1, cat1 := c.Classify("RA2-SELECT")
	for i := 0; i < 10; i++ {
		m2, cat2 := c.Classify("RA2-SELECT")
		if m1 != m2 || cat1 != cat2 {
			t.Fatalf("classification not deterministic: (%s,%s) vs (%s,%s)", m1, cat1, m2, cat2)
		}
	}
}

func TestClassifier_DefaultTables(t *testing.T) {
	c := Default()

	mfr, cat := c.Classify("RA2-SELECT")
	if mfr != "Lutron" {
		t.Errorf("RA2-SELECT manufacturer = %q, want Lutron", mfr)
	}
	if cat != "Lighting Control" {
		t.Errorf("RA2-SELECT category = %q, want Lighting Control", cat)
	}
}

// A digit-suffixed model can match a category pattern while failing the
// corresponding manufacturer pattern and falling back to the raw prefix.
// The two tables are independent on purpose.
func TestClassifier_IndependentTables(t *testing.T) {
	c := Default()

	mfr, cat := c.Classify("CORE3")
	if cat != "Audio Processor" {
		t.Errorf("CORE3 category = %q, want Audio Processor", cat)
	}
	if mfr != "CORE3" {
		t.Errorf("CORE3 manufacturer = %q, want raw-prefix fallback CORE3", mfr)
	}
}

func TestClassifier_Fallbacks(t *testing.T) {
	c := New(nil, nil)

	if got := c.Manufacturer("ZZZ-9000"); got != "ZZZ" {
		t.Errorf("fallback manufacturer = %q, want leading segment ZZZ", got)
	}
	if got := c.Manufacturer("zzz 9000"); got != "ZZZ" {
		t.Errorf("fallback manufacturer = %q, want uppercased ZZZ", got)
	}
	if got := c.Manufacturer(""); got != model.UnknownLabel {
		t.Errorf("empty candidate manufacturer = %q, want %s", got, model.UnknownLabel)
	}
	if got := c.Category("ZZZ-9000"); got != model.UnknownLabel {
		t.Errorf("unmatched category = %q, want %s", got, model.UnknownLabel)
	}
}
