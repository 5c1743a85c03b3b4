package clusterblast

import (
	"regexp"
	"strings"
)

// Metadata lives near the top of a block.
const metadataWindow = 15

const (
	sourceLabel   = "Source:"
	typeLabel     = "Type:"
	proteinsLabel = "Number of proteins with BLAST hits to this cluster:"
	scoreLabel    = "Cumulative BLAST score:"
)

var (
	clusterIDRE   = regexp.MustCompile(`^\d+\.\s+([A-Z]{3}\d+[\d.\-A-Za-z]*)`)
	bgcFallbackRE = regexp.MustCompile(`^\d+\.\s+(BGC[0-9.\-]+)`)
)

// ExtractMetadata reads the first lines of a block. The first match wins for
// every field and fields that never match stay nil.
func ExtractMetadata(block []string) ClusterMeta {
	var meta ClusterMeta
	if len(block) > metadataWindow {
		block = block[:metadataWindow]
	}

	for _, ln := range block {
		s := strings.TrimSpace(ln)

		if meta.ClusterID == nil {
			if m := clusterIDRE.FindStringSubmatch(s); m != nil {
				meta.ClusterID = ptr(m[1])
			} else if m := bgcFallbackRE.FindStringSubmatch(s); m != nil {
				meta.ClusterID = ptr(m[1])
			}
		}
		setLabel(&meta.ClusterName, s, sourceLabel)
		setLabel(&meta.ClusterType, s, typeLabel)
		setLabel(&meta.ProteinHitCount, s, proteinsLabel)
		setLabel(&meta.CumulativeScore, s, scoreLabel)
	}

	if meta.ClusterID != nil {
		meta.ClusterID = ptr(CleanClusterID(*meta.ClusterID))
	}
	return meta
}

func setLabel(field **string, line, label string) {
	if *field != nil {
		return
	}
	if rest, ok := strings.CutPrefix(line, label); ok {
		*field = ptr(strings.TrimSpace(rest))
	}
}
