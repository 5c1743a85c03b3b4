package command

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/salmon"
)

func newMappingRateCmd(app *Context) *cobra.Command {
	var exclude []string

	cmd := &cobra.Command{
		Use:   "mapping-rate <base-dir> <output-file>",
		Short: "Collect salmon mapping rates per sample",
		Long: `Collect salmon mapping rates per sample.

Every <sample>/logs/salmon_quant.log below <base-dir> contributes one row with
the first "Mapping rate = N%" it reports. --exclude takes gitignore-style
patterns relative to <base-dir>.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, outFile := args[0], args[1]

			rates, err := salmon.Collect(baseDir, exclude)
			if err != nil {
				return err
			}
			if err := salmon.WriteFile(outFile, rates); err != nil {
				return err
			}
			logger.Info("Mapping rates written", zap.Int("samples", len(rates)), zap.String("path", outFile))
			printOK(cmd.OutOrStdout(), "Wrote %d mapping rate(s) to %s", len(rates), outFile)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "gitignore-style patterns to skip")
	return cmd
}
