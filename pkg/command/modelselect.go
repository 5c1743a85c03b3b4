package command

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/iqtree"
)

func newModelSelectCmd(app *Context) *cobra.Command {
	var input, output, criterion, prefix string

	cmd := &cobra.Command{
		Use:   "model-select",
		Short: "Collect IQ-TREE best-fit models per gene tree directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := iqtree.Select(input, prefix, criterion)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = iqtree.WriteFile(output, criterion, sel)
			if errors.Is(err, iqtree.ErrNoModels) {
				logger.Error("No models extracted", zap.String("input", input), zap.String("criterion", criterion))
				printFail(out, "No models extracted.")
				return nil
			}
			if err != nil {
				return err
			}
			printOK(out, "Wrote %d results to %s", len(sel), output)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "root directory containing the gene tree directories")
	f.StringVarP(&output, "output", "o", "", "output TSV")
	f.StringVar(&criterion, "criterion", "AIC", "model selection criterion: AIC, BIC or AICc")
	f.StringVar(&prefix, "prefix", iqtree.DefaultPrefix, "only directories starting with this prefix are read")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}
