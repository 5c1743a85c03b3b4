package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yumyai/phylokit/pkg/busco"
	"github.com/yumyai/phylokit/pkg/clusterblast"
)

func strp(s string) *string { return &s }

func openTemp(t *testing.T, runID string) *ResultDB {
	t.Helper()
	r, err := Open(context.Background(), filepath.Join(t.TempDir(), "results.db"), runID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestWriteReport(t *testing.T) {
	ctx := context.Background()
	r := openTemp(t, "run-1")

	rows := []clusterblast.MergedRow{
		{
			Hit: clusterblast.Hit{
				ClusterMeta: clusterblast.ClusterMeta{ClusterID: strp("BGC0000001")},
				HitFields:   clusterblast.HitFields{QueryGene: "g1", SubjectGene: "s1"},
				Region:      "_c1",
			},
			Start:   strp("10"),
			Matched: true,
		},
		{
			Hit: clusterblast.Hit{
				HitFields: clusterblast.HitFields{QueryGene: "g9", SubjectGene: "s2"},
				Region:    "_c1",
			},
		},
	}
	if err := r.WriteReport(ctx, "barcode01", "report_c1.txt", rows); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	total, err := r.CountHits(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	matched, err := r.CountHits(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || matched != 1 {
		t.Errorf("total = %d, matched = %d; want 2, 1", total, matched)
	}

	var nulls int
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clusterblast_hits WHERE cluster_id IS NULL AND start IS NULL`).Scan(&nulls)
	if err != nil {
		t.Fatal(err)
	}
	if nulls != 1 {
		t.Errorf("rows with NULL cluster_id and start = %d, want 1", nulls)
	}
}

func TestCountHitsScopedToRun(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "results.db")

	row := clusterblast.MergedRow{Hit: clusterblast.Hit{HitFields: clusterblast.HitFields{QueryGene: "g", SubjectGene: "s"}}}
	for _, runID := range []string{"a", "b"} {
		r, err := Open(ctx, path, runID)
		if err != nil {
			t.Fatal(err)
		}
		if err := r.WriteReport(ctx, "s", "r.txt", []clusterblast.MergedRow{row}); err != nil {
			t.Fatal(err)
		}
		n, err := r.CountHits(ctx, false)
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("run %s: CountHits = %d, want 1", runID, n)
		}
		r.Close()
	}
}

func TestWriteBusco(t *testing.T) {
	ctx := context.Background()
	r := openTemp(t, "run-2")

	s := busco.Summary{
		Sample:   "seed1",
		Source:   "seed1/short_summary.txt",
		Database: strp("ascomycota_odb10"),
		Measures: []busco.Measure{{Name: "Complete", Value: 10}, {Name: "Missing", Value: 2}},
	}
	if err := r.WriteBusco(ctx, s); err != nil {
		t.Fatalf("WriteBusco: %v", err)
	}

	var sum int
	var version *string
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(value), MAX(version) FROM busco_measures WHERE run_id = ?`, r.RunID).Scan(&sum, &version)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 12 {
		t.Errorf("sum = %d, want 12", sum)
	}
	if version != nil {
		t.Errorf("version = %q, want NULL", *version)
	}
}
