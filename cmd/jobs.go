package cmd

import (
	"io"

	"evcouplings/internal/formatting"
	"evcouplings/internal/substitute"

	"github.com/spf13/cobra"
)

func newJobsCmd() *cobra.Command {
	var (
		output outputFlags
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "jobs CONFIG",
		Short: "List the jobs CONFIG expands to after overrides are applied",
		Long: `Apply the settings given as flags to CONFIG and expand its batch section
into one job per entry. Each job's configuration is the shared configuration
with the batch entry merged on top and the entry name appended to the prefix.

Examples:
  evcouplings jobs sample.yml -e 5,10,20
  evcouplings jobs sample.yml -b 0.3,0.5 -o yaml`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := collectOverrides(cmd.Flags())
			if err != nil {
				return err
			}
			formatter, err := output.formatter()
			if err != nil {
				return err
			}

			engine := substitute.NewEngine()
			render := func(w io.Writer, source string) error {
				cfg, err := engine.Run(source, overrides)
				if err != nil {
					return err
				}
				jobs, err := substitute.ExpandJobs(cfg)
				if err != nil {
					return err
				}
				return formatter.FormatJobs(w, jobs)
			}

			if watch {
				return watchAndRender(cmd, args[0], render)
			}
			return render(cmd.OutOrStdout(), args[0])
		},
	}

	registerOverrideFlags(cmd.Flags())
	registerOutputFlags(cmd.Flags(), &output, formatting.FormatTable)
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render whenever CONFIG changes")

	return cmd
}
