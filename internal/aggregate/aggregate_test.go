package aggregate

import (
	"testing"
	"time"

	"github.com/mearley24/AI-Server-sub001/internal/classify"
	"github.com/mearley24/AI-Server-sub001/internal/model"
)

func rec(source string, ts time.Time, models ...string) model.SignalRecord {
	return model.SignalRecord{
		SourceTxt: source,
		Models:    models,
		Regen:     true,
		RegenTS:   ts,
	}
}

func TestAggregate_CountInvariant(t *testing.T) {
	a := New(classify.Default())
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Two records each containing CORE3 once yield one item with count 2.
	items := a.Aggregate([]model.SignalRecord{
		rec("proposals/smith/proposal.txt", ts, "CORE3"),
		rec("manuals/smith/manual.txt", ts.Add(time.Hour), "CORE3"),
	})

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Key != "CORE3" {
		t.Errorf("key = %q, want CORE3", items[0].Key)
	}
	if items[0].Count != 2 {
		t.Errorf("count = %d, want 2", items[0].Count)
	}
}

func TestAggregate_KeyUnification(t *testing.T) {
	a := New(classify.Default())
	ts := time.Now().UTC()

	// Raw spellings that normalize to the same key are the same item.
	items := a.Aggregate([]model.SignalRecord{
		rec("a.txt", ts, "RA2-SELECT"),
		rec("b.txt", ts, "RA2_SELECT"),
		rec("c.txt", ts, "RA2--SELECT"),
	})

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Count != 3 {
		t.Errorf("count = %d, want 3", items[0].Count)
	}
	if len(items[0].Examples) != 3 {
		t.Errorf("examples = %v, want 3 distinct spellings", items[0].Examples)
	}
	if items[0].Examples[0] != "RA2-SELECT" {
		t.Errorf("first example = %q, want first-seen spelling RA2-SELECT", items[0].Examples[0])
	}
}

func TestAggregate_ExamplesBounded(t *testing.T) {
	a := New(classify.Default())
	ts := time.Now().UTC()

	spellings := []string{
		"CORE3", "CORE3.", "(CORE3)", "CORE3,", "CORE3;", "CORE3:", "CORE3!",
	}
	recs := make([]model.SignalRecord, 0, len(spellings))
	for i, s := range spellings {
		recs = append(recs, rec("doc.txt", ts.Add(time.Duration(i)*time.Minute), s))
	}

	items := a.Aggregate(recs)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if len(items[0].Examples) != model.MaxExamples {
		t.Errorf("examples = %d, want cap %d", len(items[0].Examples), model.MaxExamples)
	}
	if items[0].Count != len(spellings) {
		t.Errorf("count = %d, want %d", items[0].Count, len(spellings))
	}
}

func TestAggregate_FirstLastSeen(t *testing.T) {
	a := New(classify.Default())
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 2, 0)

	items := a.Aggregate([]model.SignalRecord{
		rec("b.txt", late, "CORE3"),
		rec("a.txt", early, "CORE3"),
	})

	if !items[0].FirstSeen.Equal(early) {
		t.Errorf("first seen = %v, want %v", items[0].FirstSeen, early)
	}
	if !items[0].LastSeen.Equal(late) {
		t.Errorf("last seen = %v, want %v", items[0].LastSeen, late)
	}
}

func TestAggregate_SortOrder(t *testing.T) {
	a := New(classify.Default())
	ts := time.Now().UTC()

	items := a.Aggregate([]model.SignalRecord{
		rec("a.txt", ts, "RA2-SELECT", "CORE3"),
		rec("b.txt", ts, "RA2-SELECT"),
	})

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Key != "RA2-SELECT" || items[1].Key != "CORE3" {
		t.Errorf("expected count-descending order, got %s then %s", items[0].Key, items[1].Key)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	a := New(classify.Default())
	ts := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	recs := []model.SignalRecord{
		rec("a.txt", ts, "CORE3", "RA2-SELECT", "AN-310-SW-R-8"),
		rec("b.txt", ts, "CORE3", "WB-800VPS-IPVM-12"),
	}

	first := a.Aggregate(recs)
	second := a.Aggregate(recs)

	if len(first) != len(second) {
		t.Fatalf("item counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key || first[i].Count != second[i].Count ||
			first[i].Manufacturer != second[i].Manufacturer || first[i].Category != second[i].Category {
			t.Errorf("item %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
