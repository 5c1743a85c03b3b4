package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yumyai/phylokit/pkg/fasta"
	"github.com/yumyai/phylokit/pkg/ortholog"
)

func newPadCmd(app *Context) *cobra.Command {
	var (
		speciesFile string
		opts        ortholog.PadOptions
	)

	cmd := &cobra.Command{
		Use:   "pad",
		Short: "Add gap-only records for species missing from orthogroups",
		Long: `Add gap-only records for species missing from orthogroups.

Each missing species gets a record named <species>_00| made of '-' as long as
the longest sequence of the orthogroup. The padded files are validated for
species count and equal sequence lengths afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			species, err := fasta.ReadSpeciesList(speciesFile)
			if err != nil {
				return err
			}
			opts.Species = species

			out := cmd.OutOrStdout()
			results, err := ortholog.PadDir(opts)
			if err != nil {
				return err
			}
			for _, r := range results {
				for _, sp := range r.Missing {
					printWarn(out, "Missing species in %s: %s", r.Orthogroup, sp)
				}
			}
			if opts.MissingReport != "" {
				printOK(out, "Missing species report saved to %s", opts.MissingReport)
			}

			issues, err := ortholog.Validate(opts.OutputDir, opts.OutputExt, len(species))
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			if len(issues) > 0 {
				printFail(out, "Validation issues found:")
				for _, issue := range issues {
					fmt.Fprintf(out, "   %s\n", issue)
				}
				return nil
			}
			printOK(out, "All output files passed validation: correct species count and equal lengths.")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&speciesFile, "species-file", "", "expected species list, one per line (leading '>' allowed)")
	f.StringVar(&opts.InputDir, "input-dir", "", "directory with orthogroup files")
	f.StringVar(&opts.InputExt, "input-ext", ".fa", "input file extension")
	f.StringVar(&opts.OutputDir, "output-dir", "", "directory for the completed orthogroup files")
	f.StringVar(&opts.OutputExt, "output-ext", ".fasta", "output file extension")
	f.IntVar(&opts.LineLength, "line-length", 60, "wrap sequences at this width (0 = no wrapping)")
	f.StringVar(&opts.MissingReport, "missing-report", "", "optional TSV of missing species per orthogroup")
	cmd.MarkFlagRequired("species-file")
	cmd.MarkFlagRequired("input-dir")
	cmd.MarkFlagRequired("output-dir")

	return cmd
}
