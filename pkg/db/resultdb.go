// Package db exports parsed tables into a SQLite file.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/yumyai/phylokit/pkg/busco"
	"github.com/yumyai/phylokit/pkg/clusterblast"
)

const schema = `
CREATE TABLE IF NOT EXISTS clusterblast_hits (
	run_id            TEXT NOT NULL,
	sample            TEXT NOT NULL,
	report            TEXT NOT NULL,
	cluster_id        TEXT,
	cluster_name      TEXT,
	cluster_type      TEXT,
	protein_hit_count TEXT,
	cumulative_score  TEXT,
	query_gene        TEXT NOT NULL,
	subject_gene      TEXT NOT NULL,
	percent_identity  TEXT,
	score             TEXT,
	percent_coverage  TEXT,
	evalue            TEXT,
	region            TEXT,
	start             TEXT,
	stop              TEXT,
	strand            TEXT,
	annotation        TEXT,
	matched           INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS clusterblast_hits_sample ON clusterblast_hits (sample, report);

CREATE TABLE IF NOT EXISTS busco_measures (
	run_id   TEXT NOT NULL,
	sample   TEXT NOT NULL,
	source   TEXT NOT NULL,
	database TEXT,
	version  TEXT,
	mode     TEXT,
	measure  TEXT NOT NULL,
	value    INTEGER NOT NULL
);
`

// ResultDB is a SQLite file receiving rows tagged with one run ID.
type ResultDB struct {
	db    *sql.DB
	RunID string
}

// Open opens (or creates) the SQLite file at path and ensures the schema.
func Open(ctx context.Context, path, runID string) (*ResultDB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer; report workers share it.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create schema in %s: %w", path, err)
	}
	return &ResultDB{db: sqlDB, RunID: runID}, nil
}

func (r *ResultDB) Close() error {
	return r.db.Close()
}

// WriteReport stores the merged rows of one report in a single transaction.
func (r *ResultDB) WriteReport(ctx context.Context, sample, report string, rows []clusterblast.MergedRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stm, err := tx.PrepareContext(ctx, `
		INSERT INTO clusterblast_hits (
			run_id, sample, report, cluster_id, cluster_name, cluster_type, protein_hit_count,
			cumulative_score, query_gene, subject_gene, percent_identity, score, percent_coverage,
			evalue, region, start, stop, strand, annotation, matched
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stm.Close()

	for _, row := range rows {
		_, err := stm.ExecContext(ctx,
			r.RunID, sample, report,
			nullable(row.ClusterID), nullable(row.ClusterName), nullable(row.ClusterType),
			nullable(row.ProteinHitCount), nullable(row.CumulativeScore),
			row.QueryGene, row.SubjectGene, row.PercentIdentity, row.Score, row.PercentCoverage,
			row.EValue, row.Region,
			nullable(row.Start), nullable(row.Stop), nullable(row.Strand), nullable(row.Annotation),
			row.Matched,
		)
		if err != nil {
			return fmt.Errorf("failed to insert hit %s/%s: %w", row.QueryGene, row.SubjectGene, err)
		}
	}
	return tx.Commit()
}

// WriteBusco stores the measures of one BUSCO summary.
func (r *ResultDB) WriteBusco(ctx context.Context, s busco.Summary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range s.Measures {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO busco_measures (run_id, sample, source, database, version, mode, measure, value)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.RunID, s.Sample, s.Source,
			nullable(s.Database), nullable(s.Version), nullable(s.Mode),
			m.Name, m.Value,
		)
		if err != nil {
			return fmt.Errorf("failed to insert busco measure %s: %w", m.Name, err)
		}
	}
	return tx.Commit()
}

// CountHits returns the number of clusterblast rows of this run, optionally
// restricted to matched rows.
func (r *ResultDB) CountHits(ctx context.Context, matchedOnly bool) (int, error) {
	q := `SELECT COUNT(*) FROM clusterblast_hits WHERE run_id = ?`
	if matchedOnly {
		q += ` AND matched = 1`
	}
	var n int
	err := r.db.QueryRowContext(ctx, q, r.RunID).Scan(&n)
	return n, err
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
