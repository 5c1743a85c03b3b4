package clusterblast

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	controlRE = regexp.MustCompile(`[\r\n\t]+`)
	quoteRE   = regexp.MustCompile(`["']`)
)

// NormalizeGeneID canonicalises a gene identifier before any comparison:
// CR/LF/TAB and quotes are removed anywhere, leading whitespace and trailing
// whitespace or ",;:" are trimmed. Normalizing twice gives the same result.
func NormalizeGeneID(s string) string {
	s = controlRE.ReplaceAllString(s, "")
	s = quoteRE.ReplaceAllString(s, "")
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	return strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == ':'
	})
}

// CleanClusterID drops a trailing version suffix: BGC0001089.5 -> BGC0001089.
func CleanClusterID(id string) string {
	if i := strings.IndexByte(id, '.'); i >= 0 {
		return id[:i]
	}
	return id
}
