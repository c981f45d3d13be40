package model

import "time"

// Origin identifies which kind of project document a token came from.
type Origin string

const (
	OriginProposal Origin = "proposal"
	OriginManual   Origin = "manual"
	OriginDrawing  Origin = "drawing"
	OriginMarkup   Origin = "markup"
	OriginFile     Origin = "file"
)

// OriginForDir maps a knowledge-root subdirectory name to an extraction origin.
// Anything outside the four known groups is a plain file.
func OriginForDir(dir string) Origin {
	switch dir {
	case "proposals":
		return OriginProposal
	case "manuals":
		return OriginManual
	case "drawings":
		return OriginDrawing
	case "markups":
		return OriginMarkup
	default:
		return OriginFile
	}
}

// SignalRecord is the per-document output of signal extraction: candidate
// model/SKU tokens plus scope-relevant heading lines. One record per source
// document; re-extraction replaces the record outright.
// The JSON field names are the on-disk schema consumed by downstream tools.
type SignalRecord struct {
	SourceTxt string    `json:"source_txt"`          // Path of the raw text this was extracted from
	Models    []string  `json:"models_or_skus_guess"` // Candidate model tokens, first-seen casing, capped
	Headings  []string  `json:"headings_guess"`       // Section heading lines, capped
	Regen     bool      `json:"regen"`                // True when machine-regenerated
	RegenTS   time.Time `json:"regen_ts"`             // When extraction ran
}

// Occurrence associates one raw token with the document it was seen in.
// Occurrences exist only during aggregation; they are never persisted.
type Occurrence struct {
	Source string
	Origin Origin
	Raw    string
}
