// Package normalize canonicalizes raw SKU tokens into comparison keys.
package normalize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// edgePunct is the fixed set of punctuation stripped from token edges.
const edgePunct = ".,;:!?()[]{}<>\"'`#*"

// Normalize canonicalizes a raw token: trim, collapse internal whitespace to a
// single space, strip edge punctuation, rewrite underscore/slash separators to
// hyphens, and collapse hyphen runs. Idempotent: normalizing an
// already-normalized string returns it unchanged.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.Trim(s, edgePunct)
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return s
}

// Key returns the aggregation key for a raw token: the uppercase form of its
// canonical string. Two raw tokens with the same key are the same item.
func Key(raw string) string {
	return strings.ToUpper(Normalize(raw))
}
