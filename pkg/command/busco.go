package command

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/busco"
	"github.com/yumyai/phylokit/pkg/tsv"
)

func newBuscoCmd(app *Context) *cobra.Command {
	var (
		indir, outfile, dbPath string
		exclude                []string
	)

	cmd := &cobra.Command{
		Use:   "busco",
		Short: "Summarise BUSCO short summaries into a long-format table",
		Long: `Summarise BUSCO short summaries into a long-format table.

Every short_summary.*.txt below each sample directory of --indir yields one
row per measure: Sample, Database, Version, Mode, Measure, Value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := busco.Collect(indir, exclude)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outfile != "-" {
				fh, err := os.Create(outfile)
				if err != nil {
					return err
				}
				defer fh.Close()
				w = fh
			}

			tw, err := tsv.NewWriter(w, busco.Header...)
			if err != nil {
				return err
			}
			for _, s := range summaries {
				for _, row := range s.Rows() {
					if err := tw.Write(row...); err != nil {
						return err
					}
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			logger.Info("BUSCO summaries parsed", zap.Int("files", len(summaries)), zap.String("outfile", outfile))

			rdb, err := app.openDB(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			if rdb == nil {
				return nil
			}
			defer rdb.Close()
			for _, s := range summaries {
				if err := rdb.WriteBusco(cmd.Context(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&indir, "indir", "i", "", "directory containing one BUSCO result directory per sample")
	f.StringVarP(&outfile, "outfile", "o", "-", "output TSV, - for stdout")
	f.StringVar(&dbPath, "db", "", "also export measures to this SQLite file (default $PHYLOKIT_DB)")
	f.StringSliceVar(&exclude, "exclude", nil, "gitignore-style patterns to skip")
	cmd.MarkFlagRequired("indir")

	return cmd
}
