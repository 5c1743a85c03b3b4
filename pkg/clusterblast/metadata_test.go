package clusterblast

import "testing"

func TestExtractMetadata(t *testing.T) {
	block := []string{
		">>",
		"1. BGC0001089.5",
		"Source: bacillaene",
		"Type: NRPS",
		"Number of proteins with BLAST hits to this cluster: 12",
		"Cumulative BLAST score: 15840",
		"Source: ignored second source",
	}

	meta := ExtractMetadata(block)
	check := func(field string, got *string, want string) {
		t.Helper()
		if got == nil {
			t.Errorf("%s is nil, want %q", field, want)
			return
		}
		if *got != want {
			t.Errorf("%s = %q, want %q", field, *got, want)
		}
	}
	check("ClusterID", meta.ClusterID, "BGC0001089")
	check("ClusterName", meta.ClusterName, "bacillaene")
	check("ClusterType", meta.ClusterType, "NRPS")
	check("ProteinHitCount", meta.ProteinHitCount, "12")
	check("CumulativeScore", meta.CumulativeScore, "15840")
}

func TestExtractMetadataMissingFields(t *testing.T) {
	meta := ExtractMetadata([]string{">>", "no identifier here", "Type: T1PKS"})
	if meta.ClusterID != nil || meta.ClusterName != nil || meta.ProteinHitCount != nil || meta.CumulativeScore != nil {
		t.Errorf("absent fields must stay nil: %+v", meta)
	}
	if meta.ClusterType == nil || *meta.ClusterType != "T1PKS" {
		t.Errorf("unexpected type %v", meta.ClusterType)
	}
}

func TestExtractMetadataWindow(t *testing.T) {
	block := make([]string, 0, 20)
	block = append(block, ">>")
	for len(block) < metadataWindow {
		block = append(block, "filler")
	}
	block = append(block, "Source: too late")

	if meta := ExtractMetadata(block); meta.ClusterName != nil {
		t.Errorf("line past the window should be ignored, got %q", *meta.ClusterName)
	}
}

func TestExtractMetadataEmptySource(t *testing.T) {
	meta := ExtractMetadata([]string{"Source:"})
	if meta.ClusterName == nil || *meta.ClusterName != "" {
		t.Errorf("a present but empty label is kept as empty, got %v", meta.ClusterName)
	}
}
