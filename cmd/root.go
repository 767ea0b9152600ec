package cmd

import (
	"errors"
	"os"

	"evcouplings/internal/config"
	"evcouplings/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeResourceUnavailable indicates the configuration file is missing, empty or unreadable.
	ExitCodeResourceUnavailable = 2
	// ExitCodeInvalidParameter indicates an override value failed validation.
	ExitCodeInvalidParameter = 3
	// ExitCodeInvalidConfiguration indicates the configuration file lacks a required section.
	ExitCodeInvalidConfiguration = 4
)

// debugLogging enables debug output on stderr for all commands.
var debugLogging bool

// rootCmd represents the base command for the evcouplings application.
var rootCmd = &cobra.Command{
	Use:   "evcouplings",
	Short: "Prepare EVcouplings pipeline run configurations",
	Long: `evcouplings merges command line options into a pipeline configuration file.

Any option specified in addition to the config file overwrites the
corresponding setting in the config file. Specifying a list of bitscores
or E-values creates a batch of jobs that only vary in this threshold, with
all other settings shared.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if debugLogging {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, cmd.ErrOrStderr())
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "evcouplings version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, config.ErrResourceUnavailable):
		return ExitCodeResourceUnavailable
	case errors.Is(err, config.ErrInvalidParameter):
		return ExitCodeInvalidParameter
	case errors.Is(err, config.ErrInvalidConfiguration):
		return ExitCodeInvalidConfiguration
	default:
		return ExitCodeError
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSubstituteCmd())
	rootCmd.AddCommand(newJobsCmd())
}
