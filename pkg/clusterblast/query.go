package clusterblast

import (
	"strings"
)

const queryTableLabel = "Table of genes, locations, strands and annotations of query cluster:"

// ParseQueryTabbed reads a tab separated query gene line (at least five
// fields). A blank annotation is nil.
func ParseQueryTabbed(line string) (QueryGene, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < 5 {
		return QueryGene{}, false
	}
	q := QueryGene{
		GeneID: NormalizeGeneID(parts[0]),
		Start:  strings.TrimSpace(parts[1]),
		Stop:   strings.TrimSpace(parts[2]),
		Strand: strings.TrimSpace(parts[3]),
	}
	if ann := strings.TrimSpace(parts[4]); ann != "" {
		q.Annotation = ptr(ann)
	}
	return q, true
}

// ParseQueryFields reads a whitespace separated query gene line. Tokens from
// the fifth on are joined into the annotation, which may contain spaces.
func ParseQueryFields(line string) (QueryGene, bool) {
	parts := strings.Fields(line)
	if len(parts) < 5 {
		return QueryGene{}, false
	}
	return QueryGene{
		GeneID:     NormalizeGeneID(parts[0]),
		Start:      parts[1],
		Stop:       parts[2],
		Strand:     parts[3],
		Annotation: ptr(strings.Join(parts[4:], " ")),
	}, true
}

func ParseQueryLine(line string) (QueryGene, bool) {
	return firstOf(line, ParseQueryTabbed, ParseQueryFields)
}

// ParseQueryTable parses the query cluster gene table of a report. Parsing
// stops at a blank line or at the "Significant hits:" / "Details:" sections.
func ParseQueryTable(lines []string) []QueryGene {
	start := -1
	for i, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), queryTableLabel) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var genes []QueryGene
	for _, ln := range lines[start:] {
		s := strings.TrimSpace(ln)
		if s == "" || strings.HasPrefix(s, "Significant hits:") || strings.HasPrefix(s, "Details:") {
			break
		}
		if q, ok := ParseQueryLine(ln); ok {
			genes = append(genes, q)
		}
	}
	return genes
}
