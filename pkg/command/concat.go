package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yumyai/phylokit/pkg/fasta"
	"github.com/yumyai/phylokit/pkg/ortholog"
)

var errNoOrthologs = errors.New("no ortholog files given")

func newConcatCmd(app *Context) *cobra.Command {
	var (
		expectedFile string
		outputFile   string
		orthologs    []string
		lineLength   int
	)

	cmd := &cobra.Command{
		Use:   "concat [ortholog files...]",
		Short: "Concatenate ortholog alignments per species",
		Long: `Concatenate ortholog alignments per species.

Records are assigned to species by the header text before the first '_'.
Species missing from the expected list are ignored. Ortholog files may be
given with --ortholog-files, as arguments, or both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := append(orthologs, args...)
			if len(files) == 0 {
				return errNoOrthologs
			}

			species, err := fasta.ReadSpeciesList(expectedFile)
			if err != nil {
				return err
			}

			c := ortholog.NewConcatenation(species)
			for _, f := range files {
				if err := c.AddFile(f); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			printLengthReport(out, c.CheckLengths(), c.Species())

			if err := fasta.WriteFile(outputFile, c.Records(), lineLength); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nConcatenated FASTA file created: %s\n", outputFile)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&expectedFile, "expected-file", "", "expected species list, one per line (leading '>' allowed)")
	f.StringVar(&outputFile, "output-file", "", "concatenated FASTA to write")
	f.StringSliceVar(&orthologs, "ortholog-files", nil, "ortholog FASTA files, in concatenation order")
	f.IntVar(&lineLength, "line-length", 0, "wrap sequences at this width (0 = no wrapping)")
	cmd.MarkFlagRequired("expected-file")
	cmd.MarkFlagRequired("output-file")

	return cmd
}

func printLengthReport(out io.Writer, r ortholog.LengthReport, species []string) {
	if r.Consistent {
		printOK(out, "All species have the same concatenated length: %d bp", r.Majority)
		return
	}

	printFail(out, "Length inconsistencies detected:")
	for _, sp := range species {
		fmt.Fprintf(out, "   %s: %d bp\n", sp, r.Lengths[sp])
	}
	fmt.Fprintf(out, "\nExpected (majority) length: %d bp\n", r.Majority)
	fmt.Fprintln(out, "Problematic species:")
	for _, sp := range r.Problematic {
		fmt.Fprintf(out, "   %s (%d bp)\n", sp, r.Lengths[sp])
	}
}
