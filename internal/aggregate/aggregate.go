// Package aggregate merges signal records from many documents into per-SKU
// inventory items.
package aggregate

import (
	"time"

	"github.com/mearley24/AI-Server-sub001/internal/classify"
	"github.com/mearley24/AI-Server-sub001/internal/model"
	"github.com/mearley24/AI-Server-sub001/internal/normalize"
)

// Aggregator recomputes the complete inventory from the full set of signal
// records. Every run replaces the previous aggregation outright; nothing is
// merged incrementally and items are never deleted piecemeal.
type Aggregator struct {
	classifier *classify.Classifier
}

// New creates an Aggregator using the given classifier tables.
func New(classifier *classify.Classifier) *Aggregator {
	return &Aggregator{classifier: classifier}
}

// Aggregate builds inventory items from all records. For every token: the
// normalized-uppercase key is the item identity, the classifier guesses
// manufacturer and category, the count tracks occurrences, and the first five
// distinct raw spellings are kept as examples. First/last-seen carry the
// earliest and latest record timestamps that contained the key, so identical
// input produces identical output.
func (a *Aggregator) Aggregate(recs []model.SignalRecord) []model.InventoryItem {
	byKey := make(map[string]*model.InventoryItem)
	exampleSeen := make(map[string]map[string]struct{})

	for _, rec := range recs {
		ts := rec.RegenTS
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		for _, raw := range rec.Models {
			key := normalize.Key(raw)
			if key == "" {
				continue
			}

			item, ok := byKey[key]
			if !ok {
				mfr, cat := a.classifier.Classify(key)
				item = &model.InventoryItem{
					Key:          key,
					Manufacturer: mfr,
					Category:     cat,
					FirstSeen:    ts,
					LastSeen:     ts,
				}
				byKey[key] = item
				exampleSeen[key] = make(map[string]struct{})
			}

			item.Count++
			if ts.Before(item.FirstSeen) {
				item.FirstSeen = ts
			}
			if ts.After(item.LastSeen) {
				item.LastSeen = ts
			}

			if _, dup := exampleSeen[key][raw]; !dup && len(item.Examples) < model.MaxExamples {
				exampleSeen[key][raw] = struct{}{}
				item.Examples = append(item.Examples, raw)
			}
		}
	}

	items := make([]model.InventoryItem, 0, len(byKey))
	for _, item := range byKey {
		items = append(items, *item)
	}
	model.SortItems(items)
	return items
}
