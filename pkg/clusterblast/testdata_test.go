package clusterblast

import (
	"strconv"
	"strings"
)

// reportText assembles a ClusterBlast report with one query table and the
// given hit blocks.
func reportText(queryRows []string, blocks ...string) string {
	var b strings.Builder
	b.WriteString("ClusterBlast scores for /data/barcode01/region_c1.gbk\n\n")
	b.WriteString("Table of genes, locations, strands and annotations of query cluster:\n")
	for _, r := range queryRows {
		b.WriteString(r + "\n")
	}
	b.WriteString("\n\nSignificant hits: \n1. BGC0001089.5\tbacillaene_Polyketide+NRP\n\n\nDetails:\n\n")
	for _, blk := range blocks {
		b.WriteString(blk)
	}
	return b.String()
}

func hitBlock(n int, id, source, typ string, hits ...string) string {
	var b strings.Builder
	b.WriteString(">>\n")
	b.WriteString(strconv.Itoa(n) + ". " + id + "\n")
	b.WriteString("Source: " + source + "\n")
	b.WriteString("Type: " + typ + "\n")
	b.WriteString("Number of proteins with BLAST hits to this cluster: " + strconv.Itoa(len(hits)) + "\n")
	b.WriteString("Cumulative BLAST score: 3000\n\n")
	b.WriteString("Table of genes, locations, strands and annotations of subject cluster:\n")
	b.WriteString("AJF39018.1\tAJF39018.1\t1\t100\t+\tsubject protein\n\n")
	b.WriteString("Table of Blast hits (query gene, subject gene, %identity, blast score, %coverage, e-value):\n")
	for _, h := range hits {
		b.WriteString(h + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
