package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flutter-bootstrap/internal/logger"
)

// verbosity selects the logging level. It can be set via the
// `--verbosity`/`-v` flag and accepts the enumerated level names only.
var verbosity string

// rootCmd is the base command for the CLI tool `flutter-bootstrap`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "flutter-bootstrap",                                       // The name of the CLI tool
	Short: "A simple Windows installer for Flutter development tools", // Short description shown in help output

	// PersistentPreRunE is a hook that runs before any subcommand.
	// Here, we validate the verbosity choice and initialize the logger.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !logger.ValidLevel(verbosity) {
			return fmt.Errorf("invalid verbosity %q (choose from DEBUG, INFO, WARNING, ERROR, CRITICAL)", verbosity)
		}
		logger.Init(verbosity)
		return nil
	},
}

// Execute initializes flags and starts the command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	// Register the global --verbosity flag before any command is executed.
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", logger.LevelInfo,
		"verbosity level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")

	// Execute runs the appropriate subcommand or displays help if none is provided.
	// Errors are ignored here with `_ =` since Cobra handles them internally by default.
	_ = rootCmd.Execute()
}
