// Package extract converts raw project-document text into signal records:
// candidate model/SKU tokens plus scope-relevant heading lines.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/mearley24/AI-Server-sub001/internal/model"
)

// tokenRun matches maximal runs of uppercase letters, digits, and hyphens.
// Candidates are filtered afterwards; the run itself is deliberately broad.
var tokenRun = regexp.MustCompile(`[A-Z0-9-]+`)

const (
	minTokenLen = 4
	maxTokenLen = 40
	maxHyphens  = 5 // 6 or more hyphens means a part string, not a model number
)

// nonModelVocab lists unit, protocol, and code-compliance abbreviations that
// look like model numbers but never are. Exact-match rejection.
var nonModelVocab = []string{
	"HDMI", "HDCP", "HDBT", "USB-C",
	"CAT5", "CAT5E", "CAT6", "CAT6A", "CAT7",
	"RJ45", "RJ-45", "RS232", "RS-232", "RS485", "RS-485", "RS422", "RS-422",
	"POE", "VLAN", "DHCP", "IEEE", "802-11", "802-3",
	"IP65", "IP66", "IP67",
	"12V", "24V", "48V", "110V", "120V", "220V", "240V",
	"H264", "H265", "MP4", "4K60", "4K120", "1080P", "2160P",
	"NEC-2020", "NFPA-70", "UL-2043", "TIA-568",
}

// acceptedPrefixes is the product-line acceptance list. A candidate must begin
// with one of these or it is dropped. Precision over recall: unknown lines
// produce false negatives, which is the intended trade.
var acceptedPrefixes = []string{
	// Lutron
	"RA2", "RA3", "RRST", "HQP", "QSGF", "PD", "CAS", "CSR",
	// Crestron
	"DM", "CP4", "MC4", "PRO4", "TSW", "TST", "CEN", "DIN",
	// QSC
	"CORE", "TSC", "NV", "CXD", "SPA",
	// Control4
	"C4", "EA", "DS2", "T4",
	// Araknis / WattBox / Luma
	"AN", "WB", "LUM", "LVR", "IPC",
	// Ubiquiti
	"UDM", "USW", "UAP", "U6", "U7",
	// Sonos
	"PLAY", "ARC", "BEAM", "PORT", "SUB", "ERA",
	// Sonance
	"VP", "MAG",
	// Denon / Marantz / Sony / Samsung / LG / Epson
	"AVR", "SR", "NR", "XBR", "VPL", "STR", "QN", "UN", "LH", "OLED", "LS", "EH",
	// Racks and power
	"BGR", "ERK", "SRSR", "RLNK",
	// Screens, voice, streaming
	"SI", "ZRW", "JOSH", "ATV",
}

// headingKeywords are the section keywords that mark a scope-relevant line.
// Matched case-insensitively at the start of the line.
var headingKeywords = []string{
	"scope", "assumptions", "exclusions", "networking", "audio", "video",
	"lighting", "shades", "security", "cameras", "warranty",
}

// Extractor turns one raw text document into a signal record. It is pure:
// persistence and progress logging belong to the caller.
type Extractor struct {
	maxTokens   int
	maxHeadings int
	vocab       map[string]struct{}
	prefixes    []string
	headings    []string
}

// NewExtractor creates an extractor with the given output caps.
func NewExtractor(cfg model.ExtractConfig) *Extractor {
	vocab := make(map[string]struct{}, len(nonModelVocab))
	for _, w := range nonModelVocab {
		vocab[w] = struct{}{}
	}
	return &Extractor{
		maxTokens:   cfg.MaxTokens,
		maxHeadings: cfg.MaxHeadings,
		vocab:       vocab,
		prefixes:    acceptedPrefixes,
		headings:    headingKeywords,
	}
}

// Extract scans raw text and returns the signal record for sourcePath.
// Re-running on identical text yields an identical record except for RegenTS.
func (e *Extractor) Extract(text, sourcePath string) model.SignalRecord {
	return model.SignalRecord{
		SourceTxt: sourcePath,
		Models:    e.extractTokens(text),
		Headings:  e.extractHeadings(text),
		Regen:     true,
		RegenTS:   time.Now().UTC(),
	}
}

// extractTokens finds candidate model tokens, deduplicated case-insensitively
// with first-seen casing preserved, capped at maxTokens.
func (e *Extractor) extractTokens(text string) []string {
	seen := make(map[string]struct{})
	tokens := []string{}

	for _, run := range tokenRun.FindAllString(text, -1) {
		if !e.accept(run) {
			continue
		}
		key := strings.ToUpper(run)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tokens = append(tokens, run)
		if len(tokens) >= e.maxTokens {
			break
		}
	}

	return tokens
}

// accept applies the candidate filters in rejection-cost order.
func (e *Extractor) accept(run string) bool {
	if len(run) < minTokenLen || len(run) > maxTokenLen {
		return false
	}
	if !strings.ContainsAny(run, "0123456789") {
		return false
	}
	if _, stop := e.vocab[run]; stop {
		return false
	}
	if strings.Count(run, "-") > maxHyphens {
		return false
	}
	for _, p := range e.prefixes {
		if strings.HasPrefix(run, p) {
			return true
		}
	}
	return false
}

// extractHeadings keeps lines beginning with a section keyword, capped at
// maxHeadings.
func (e *Extractor) extractHeadings(text string) []string {
	headings := []string{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, kw := range e.headings {
			if strings.HasPrefix(lower, kw) {
				headings = append(headings, trimmed)
				break
			}
		}
		if len(headings) >= e.maxHeadings {
			break
		}
	}

	return headings
}
