package command

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yumyai/phylokit/pkg/rename"
)

func newRenameCmd(app *Context) *cobra.Command {
	var opts rename.Options

	cmd := &cobra.Command{
		Use:   "rename <input-dir> <output-fasta-dir> <output-summary-dir>",
		Short: "Standardise proteome file names and FASTA headers",
		Long: `Standardise proteome file names and FASTA headers.

Files of <input-dir> are taken in name order; file i becomes <prefix>NN.fasta
and its records <prefix>NN_<n>|. Characters that are not amino acid codes are
removed and counted in cleanup_summary.tsv.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InputDir, opts.FastaDir, opts.SummaryDir = args[0], args[1], args[2]

			results, err := rename.Run(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			printOK(out, "Processed FASTA files saved to %s", opts.FastaDir)
			printOK(out, "Mapping file saved to %s", filepath.Join(opts.SummaryDir, rename.MappingFile))
			printOK(out, "Cleanup summary saved to %s", filepath.Join(opts.SummaryDir, rename.CleanupFile))
			printOK(out, "Species list saved to %s", filepath.Join(opts.SummaryDir, rename.SpeciesFile))

			fmt.Fprintln(out, "\nCleanup summary (invalid characters removed):")
			for _, r := range results {
				if total := r.Removed.Total(); total > 0 {
					fmt.Fprintf(out, "   %s: %d removed (%s)\n", r.OldName, total, r.Removed)
				} else {
					fmt.Fprintf(out, "   %s: 0 removed\n", r.OldName)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "sample", "prefix for renamed files and headers")
	return cmd
}
