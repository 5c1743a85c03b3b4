package clusterblast

// Merge left-joins hits onto the query gene table by normalized gene id.
// Duplicate query genes keep their first occurrence, so every hit yields
// exactly one merged row. Rows without a query match are also returned in
// unmatched, in hit order.
func Merge(hits []Hit, query []QueryGene) (merged, unmatched []MergedRow) {
	byGene := make(map[string]QueryGene, len(query))
	for _, q := range query {
		id := NormalizeGeneID(q.GeneID)
		if _, dup := byGene[id]; !dup {
			byGene[id] = q
		}
	}

	merged = make([]MergedRow, 0, len(hits))
	for _, h := range hits {
		h.QueryGene = NormalizeGeneID(h.QueryGene)
		row := MergedRow{Hit: h}

		if q, ok := byGene[h.QueryGene]; ok {
			row.Start = ptr(q.Start)
			row.Stop = ptr(q.Stop)
			row.Strand = ptr(q.Strand)
			row.Annotation = q.Annotation
			row.Matched = true
		} else {
			unmatched = append(unmatched, row)
		}
		merged = append(merged, row)
	}
	return merged, unmatched
}
