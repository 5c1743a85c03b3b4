package clusterblast

import (
	"strings"
)

const hitsTableLabel = "Table of Blast hits"

// firstOf runs line parsers in order and returns the first success.
func firstOf[T any](line string, parsers ...func(string) (T, bool)) (T, bool) {
	for _, p := range parsers {
		if v, ok := p(line); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ParseHitTabbed reads a tab separated hit line with at least six fields.
func ParseHitTabbed(line string) (HitFields, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < 6 {
		return HitFields{}, false
	}
	return HitFields{
		QueryGene:       NormalizeGeneID(parts[0]),
		SubjectGene:     strings.TrimSpace(parts[1]),
		PercentIdentity: strings.TrimSpace(parts[2]),
		Score:           strings.TrimSpace(parts[3]),
		PercentCoverage: strings.TrimSpace(parts[4]),
		EValue:          strings.TrimSpace(parts[5]),
	}, true
}

// ParseHitFields reads a whitespace separated hit line. Only the first six
// tokens are used; anything after them is dropped.
func ParseHitFields(line string) (HitFields, bool) {
	parts := strings.Fields(line)
	if len(parts) < 6 {
		return HitFields{}, false
	}
	return HitFields{
		QueryGene:       NormalizeGeneID(parts[0]),
		SubjectGene:     parts[1],
		PercentIdentity: parts[2],
		Score:           parts[3],
		PercentCoverage: parts[4],
		EValue:          parts[5],
	}, true
}

// ParseHitLine prefers the tab layout and falls back to whitespace.
func ParseHitLine(line string) (HitFields, bool) {
	return firstOf(line, ParseHitTabbed, ParseHitFields)
}

// ParseHitsTable finds the hits table of a block and parses its rows until a
// blank line or the start of another cluster. It returns found=false when the
// block has no hits table. Unparsable lines are skipped.
func ParseHitsTable(block []string) (hits []HitFields, found bool) {
	start := -1
	for i, ln := range block {
		if strings.HasPrefix(strings.TrimSpace(ln), hitsTableLabel) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	for _, ln := range block[start:] {
		s := strings.TrimSpace(ln)
		if s == "" || isBlockMarker(s) || ordinalClusterRE.MatchString(s) {
			break
		}
		if h, ok := ParseHitLine(ln); ok {
			hits = append(hits, h)
		}
	}
	return hits, true
}
