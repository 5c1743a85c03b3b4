package clusterblast

// Optional fields are *string: nil means unknown, which is never the same as
// an empty value.

// ReportFile is one ClusterBlast text report of a sample.
type ReportFile struct {
	Path   string
	Sample string
	Region string
}

// QueryGene is one row of the query cluster gene table.
type QueryGene struct {
	GeneID     string
	Start      string
	Stop       string
	Strand     string
	Annotation *string
}

// ClusterMeta is the header information of one homologous cluster block.
type ClusterMeta struct {
	ClusterID       *string
	ClusterName     *string
	ClusterType     *string
	ProteinHitCount *string
	CumulativeScore *string
}

// Span is a half-open line range [Start, End) of a report.
type Span struct {
	Start int
	End   int
}

// HitFields are the six columns of a "Table of Blast hits" line.
type HitFields struct {
	QueryGene       string
	SubjectGene     string
	PercentIdentity string
	Score           string
	PercentCoverage string
	EValue          string
}

// Hit is one alignment row with the metadata of the block it came from.
type Hit struct {
	ClusterMeta
	HitFields
	Region string
}

// MergedRow is a hit left-joined with its query gene.
type MergedRow struct {
	Hit
	Start      *string
	Stop       *string
	Strand     *string
	Annotation *string
	Matched    bool
}

// Report is everything parsed from one report file.
type Report struct {
	Query []QueryGene
	Hits  []Hit
}

// Columns of the results and unmatched tables, in order.
var Columns = []string{
	"cluster_id", "cluster_name", "cluster_type", "protein_hit_count", "cumulative_score",
	"query_gene", "subject_gene", "percent_identity", "score", "percent_coverage", "e-value",
	"region", "start", "stop", "strand", "annotation",
}

// Values renders the row in Columns order; nil fields become empty cells.
func (r MergedRow) Values() []string {
	return []string{
		deref(r.ClusterID), deref(r.ClusterName), deref(r.ClusterType),
		deref(r.ProteinHitCount), deref(r.CumulativeScore),
		r.QueryGene, r.SubjectGene, r.PercentIdentity, r.Score, r.PercentCoverage, r.EValue,
		r.Region,
		deref(r.Start), deref(r.Stop), deref(r.Strand), deref(r.Annotation),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string { return &s }
