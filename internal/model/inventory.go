package model

import (
	"sort"
	"time"
)

// MaxExamples bounds the distinct raw spellings kept per inventory item.
const MaxExamples = 5

// UnknownLabel is the placeholder for a manufacturer or category that no
// pattern matched.
const UnknownLabel = "Unknown"

// InventoryItem is one deduplicated piece of equipment, keyed by the
// normalized-uppercase SKU. Two raw tokens that normalize to the same key are
// the same item. Items are recomputed from scratch on every aggregation run,
// never deleted incrementally.
type InventoryItem struct {
	Key          string    `json:"key"`          // Normalized-uppercase SKU (aggregation identity)
	Manufacturer string    `json:"manufacturer"` // Classifier guess
	Category     string    `json:"category"`     // Classifier guess
	Count        int       `json:"count"`        // Occurrences across all signal records
	FirstSeen    time.Time `json:"first_seen"`
	LastSeen     time.Time `json:"last_seen"`
	Examples     []string  `json:"examples"` // Up to MaxExamples distinct raw spellings
}

// SortItems orders items for every tabular artifact: count descending, then
// manufacturer, then key. The order is the determinism contract for reports
// and queue builds.
func SortItems(items []InventoryItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Manufacturer != b.Manufacturer {
			return a.Manufacturer < b.Manufacturer
		}
		return a.Key < b.Key
	})
}
