package command

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/clusterblast"
	"github.com/yumyai/phylokit/pkg/jobs"
)

func newClusterBlastCmd(app *Context) *cobra.Command {
	var (
		opts   clusterblast.Options
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "clusterblast",
		Short: "Parse ClusterBlast reports into merged per-file and per-sample tables",
		Long: `Parse antiSMASH ClusterBlast text reports.

Every sample directory under --input-dir matching --pattern is expected to
hold a report subdirectory (--subdir, matched case-insensitively) of *.txt
reports. Per report, <name>.results.tsv and, when some hits have no query
gene, <name>.unmatched_rows.csv are written below <out-dir>/<sample>/.
<out-dir>/<sample>.merged_results.tsv collects all rows of a sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Subdir == "" {
				opts.Subdir = app.Config.Subdir
			}
			if opts.Workers < 1 {
				opts.Workers = app.Config.Workers
			}

			rdb, err := app.openDB(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			if rdb != nil {
				defer rdb.Close()
				opts.Sink = rdb
			}

			summary, err := clusterblast.NewPipeline(opts).Run(cmd.Context())
			if err != nil {
				return err
			}

			logger.Info("Finished",
				zap.Int("samples", summary.Samples),
				zap.Int("samples_written", summary.SamplesWritten),
				zap.Int("samples_skipped", summary.SamplesSkipped),
				zap.Int("files_completed", summary.Files[jobs.Completed]),
				zap.Int("files_skipped", summary.Files[jobs.Skipped]),
				zap.Int("files_failed", summary.Files[jobs.Failed]),
			)

			out := cmd.OutOrStdout()
			if summary.Files[jobs.Failed] > 0 {
				printFail(out, "%d report(s) failed", summary.Files[jobs.Failed])
			}
			printOK(out, "%d of %d sample(s) written to %s (%d report(s) completed, %d skipped)",
				summary.SamplesWritten, summary.Samples, opts.OutDir,
				summary.Files[jobs.Completed], summary.Files[jobs.Skipped])

			if rdb != nil {
				if n, err := rdb.CountHits(cmd.Context(), false); err == nil {
					logger.Info("Rows exported", zap.Int("rows", n))
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.InputDir, "input-dir", "i", "", "directory containing sample directories")
	f.StringVarP(&opts.Pattern, "pattern", "p", "barcode*", "glob for sample directory names")
	f.StringVarP(&opts.OutDir, "out-dir", "o", "", "output base directory")
	f.StringVar(&opts.Subdir, "subdir", "", "report subdirectory inside each sample (default $PHYLOKIT_SUBDIR or knownclusterblastdirectory)")
	f.IntVar(&opts.Workers, "workers", 0, "reports parsed in parallel per sample (default $PHYLOKIT_WORKERS or CPU count)")
	f.StringVar(&dbPath, "db", "", "also export rows to this SQLite file (default $PHYLOKIT_DB)")
	cmd.MarkFlagRequired("input-dir")
	cmd.MarkFlagRequired("out-dir")

	return cmd
}
