package model

// RoomMapRow is one externally curated (SKU, room archetype) association.
// Manufacturer and category are optional columns; when present they are the
// preferred metadata source for proposal export, overriding heuristic guesses.
type RoomMapRow struct {
	SKU          string
	Archetype    string
	Manufacturer string
	Category     string
}

// SKUCount is one (SKU, count) entry in an archetype's frequency table.
type SKUCount struct {
	SKU   string
	Count int
}

// RoomPackage is the typical equipment package for one room archetype:
// its SKU frequency table, capped to the top entries by count.
type RoomPackage struct {
	Archetype string
	Total     int // Combined occurrences across all SKUs, before capping
	SKUs      []SKUCount
}

// BOMLine is one row of the per-project bill-of-materials export, in the shape
// the AV project-management importer expects.
type BOMLine struct {
	Model        string
	Manufacturer string
	Category     string
	Quantity     int
	Room         string
}
