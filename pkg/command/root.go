// Package command wires every phylokit utility into a cobra command tree.
package command

import (
	"github.com/spf13/cobra"

	"github.com/yumyai/phylokit/logger"
)

// NewRootCmd builds the phylokit command with all subcommands attached.
func NewRootCmd(version string) *cobra.Command {
	app := &Context{Version: version}

	root := &cobra.Command{
		Use:   "phylokit",
		Short: "Parsing and preparation utilities for phylogenomics runs",
		Long: `phylokit bundles the small pipeline steps around a phylogenomics run:

  clusterblast   parse antiSMASH ClusterBlast reports into merged tables
  concat         concatenate ortholog alignments per species
  pad            add gap-only records for species missing from orthogroups
  rename         standardise proteome file names and FASTA headers
  mapping-rate   collect salmon mapping rates
  model-select   collect IQ-TREE best-fit models
  busco          summarise BUSCO short summaries

Defaults can be set in the environment or a .env file:
PHYLOKIT_SUBDIR, PHYLOKIT_WORKERS, PHYLOKIT_DB, PHYLOKIT_LOG_LEVEL.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "print debug checkpoints")

	root.AddCommand(
		newClusterBlastCmd(app),
		newConcatCmd(app),
		newPadCmd(app),
		newRenameCmd(app),
		newMappingRateCmd(app),
		newModelSelectCmd(app),
		newBuscoCmd(app),
	)
	return root
}
