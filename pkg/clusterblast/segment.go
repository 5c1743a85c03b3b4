package clusterblast

import (
	"regexp"
	"strings"
)

const blockMarker = ">>"

// A numbered cluster line such as "1. BGC0001089.5", used when a report has
// no ">>" markers at all.
var ordinalClusterRE = regexp.MustCompile(`^\d+\.\s+BGC`)

func isBlockMarker(trimmed string) bool {
	return strings.HasPrefix(trimmed, blockMarker)
}

// Segment splits a report into cluster blocks. Each block runs from its
// start line up to the next start line or the end of the report. The
// numbered-line fallback is only tried when no ">>" marker exists.
func Segment(lines []string) []Span {
	starts := markerLines(lines, isBlockMarker)
	if len(starts) == 0 {
		starts = markerLines(lines, ordinalClusterRE.MatchString)
	}

	spans := make([]Span, len(starts))
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		spans[i] = Span{Start: start, End: end}
	}
	return spans
}

func markerLines(lines []string, match func(string) bool) []int {
	var idx []int
	for i, ln := range lines {
		if match(strings.TrimSpace(ln)) {
			idx = append(idx, i)
		}
	}
	return idx
}
