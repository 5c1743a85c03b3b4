package clusterblast

import "testing"

func TestMergeLeftJoin(t *testing.T) {
	query := []QueryGene{
		{GeneID: "geneA", Start: "100", Stop: "200", Strand: "+", Annotation: ptr("kinase")},
		{GeneID: "geneA", Start: "999", Stop: "999", Strand: "-", Annotation: ptr("duplicate")},
		{GeneID: " geneB;", Start: "300", Stop: "400", Strand: "-"},
	}
	hits := []Hit{
		{HitFields: HitFields{QueryGene: "geneA", SubjectGene: "s1"}},
		{HitFields: HitFields{QueryGene: "geneX", SubjectGene: "s2"}},
		{HitFields: HitFields{QueryGene: "geneB", SubjectGene: "s3"}},
		{HitFields: HitFields{QueryGene: "geneA", SubjectGene: "s4"}},
	}

	merged, unmatched := Merge(hits, query)
	if len(merged) != len(hits) {
		t.Fatalf("left join must keep cardinality: got %d rows for %d hits", len(merged), len(hits))
	}

	for i, r := range merged {
		if r.SubjectGene != hits[i].SubjectGene {
			t.Errorf("row %d out of order: %s", i, r.SubjectGene)
		}
	}

	if !merged[0].Matched || *merged[0].Start != "100" || *merged[0].Annotation != "kinase" {
		t.Errorf("first occurrence of a duplicate gene should win: %+v", merged[0])
	}
	if merged[1].Matched || merged[1].Start != nil || merged[1].Annotation != nil {
		t.Errorf("unmatched row should have nil query fields: %+v", merged[1])
	}
	if !merged[2].Matched || merged[2].Annotation != nil || *merged[2].Strand != "-" {
		t.Errorf("unexpected geneB row: %+v", merged[2])
	}

	if len(unmatched) != 1 || unmatched[0].QueryGene != "geneX" {
		t.Errorf("unexpected unmatched rows %+v", unmatched)
	}
}

func TestMergeEmptyQuery(t *testing.T) {
	hits := []Hit{{HitFields: HitFields{QueryGene: "geneA"}}, {HitFields: HitFields{QueryGene: "geneB"}}}
	merged, unmatched := Merge(hits, nil)
	if len(merged) != 2 || len(unmatched) != 2 {
		t.Errorf("got %d merged and %d unmatched", len(merged), len(unmatched))
	}
}

func TestMergedRowValues(t *testing.T) {
	row := MergedRow{
		Hit: Hit{
			ClusterMeta: ClusterMeta{ClusterID: ptr("BGC0001089")},
			HitFields:   HitFields{QueryGene: "geneA", SubjectGene: "subjB"},
			Region:      "c1",
		},
		Start: ptr("100"),
	}
	values := row.Values()
	if len(values) != len(Columns) {
		t.Fatalf("got %d values for %d columns", len(values), len(Columns))
	}
	if values[0] != "BGC0001089" || values[1] != "" || values[11] != "c1" || values[12] != "100" || values[15] != "" {
		t.Errorf("unexpected values %q", values)
	}
}
