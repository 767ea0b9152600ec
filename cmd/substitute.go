package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"evcouplings/internal/formatting"
	"evcouplings/internal/substitute"
	"evcouplings/internal/watcher"
	"evcouplings/pkg/logging"

	"github.com/spf13/cobra"
)

// renderFunc produces one rendering of the command's result for a source file.
type renderFunc func(w io.Writer, source string) error

func newSubstituteCmd() *cobra.Command {
	var (
		output outputFlags
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "substitute CONFIG",
		Short: "Print CONFIG with command line overrides applied",
		Long: `Load the pipeline configuration CONFIG, apply the settings given as flags
and print the merged configuration.

Only flags that are given on the command line are applied. A list of
bitscores or E-values (-b 0.3,0.5,0.7) replaces the batch section with one
entry per threshold.

Examples:
  evcouplings substitute sample.yml -p RASH_HUMAN -r 1-189
  evcouplings substitute sample.yml -b 0.3,0.5 -o json
  evcouplings substitute sample.yml -s query.fa --watch`,
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
				return formatter.FormatConfig(w, cfg)
			}

			if watch {
				return watchAndRender(cmd, args[0], render)
			}
			return render(cmd.OutOrStdout(), args[0])
		},
	}

	registerOverrideFlags(cmd.Flags())
	registerOutputFlags(cmd.Flags(), &output, formatting.FormatYAML)
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render whenever CONFIG changes")

	return cmd
}

// watchAndRender renders once and then again after every change of source,
// until interrupted. Failures after the first rendering are logged and the
// watch continues, so a half-edited file does not end the session.
func watchAndRender(cmd *cobra.Command, source string, render renderFunc) error {
	out := cmd.OutOrStdout()
	if err := render(out, source); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(source, 0)
	if err != nil {
		return err
	}
	return w.Watch(ctx, func() {
		logging.Info("CLI", "Configuration %s changed, rendering again", source)
		fmt.Fprintln(out, "---")
		if err := render(out, source); err != nil {
			logging.Error("CLI", err, "Rendering %s failed", source)
		}
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
