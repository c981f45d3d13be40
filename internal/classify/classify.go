// Package classify guesses manufacturer and category for normalized SKU keys
// using ordered pattern tables with deterministic fallback.
package classify

import (
	"regexp"
	"strings"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

// Rule is one (label, pattern) pair in an ordered table. Tables are scanned in
// order; the first pattern that matches wins.
type Rule struct {
	Label   string
	Pattern *regexp.Regexp
}

// MustRule builds a Rule, panicking on a bad pattern. Intended for table
// literals.
func MustRule(label, pattern string) Rule {
	return Rule{Label: label, Pattern: regexp.MustCompile(pattern)}
}

// Classifier resolves manufacturer and category guesses for a candidate
// string. The two tables are evaluated independently against the same input:
// a token can match a category rule while falling back to a raw-prefix
// manufacturer derivation. Tables are fixed at construction.
type Classifier struct {
	makers     []Rule
	categories []Rule
}

// New creates a Classifier with explicit tables. Pass the Default* tables for
// production behavior or custom tables for testing.
func New(makers, categories []Rule) *Classifier {
	return &Classifier{makers: makers, categories: categories}
}

// Default returns a Classifier using the built-in tables.
func Default() *Classifier {
	return New(DefaultManufacturerRules(), DefaultCategoryRules())
}

// Classify returns the manufacturer and category guesses for a candidate.
func (c *Classifier) Classify(candidate string) (manufacturer, category string) {
	return c.Manufacturer(candidate), c.Category(candidate)
}

// Manufacturer scans the manufacturer table in order. When nothing matches it
// falls back to the uppercased leading segment of the candidate, up to the
// first hyphen or space, or "Unknown" when that segment is empty.
func (c *Classifier) Manufacturer(candidate string) string {
	for _, r := range c.makers {
		if r.Pattern.MatchString(candidate) {
			return r.Label
		}
	}
	return fallbackManufacturer(candidate)
}

// Category scans the category table in order; no match yields "Unknown".
func (c *Classifier) Category(candidate string) string {
	for _, r := range c.categories {
		if r.Pattern.MatchString(candidate) {
			return r.Label
		}
	}
	return model.UnknownLabel
}

func fallbackManufacturer(candidate string) string {
	seg := candidate
	if i := strings.IndexAny(seg, "- "); i >= 0 {
		seg = seg[:i]
	}
	seg = strings.ToUpper(strings.TrimSpace(seg))
	if seg == "" {
		return model.UnknownLabel
	}
	return seg
}
