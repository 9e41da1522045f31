package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"flutter-bootstrap/internal/config"
	"flutter-bootstrap/internal/envpath"
	"flutter-bootstrap/internal/installer"
	"flutter-bootstrap/internal/logger"
)

// toolsPath optionally points at a YAML tools definition overriding the
// built-in table. It's passed via the `--tools` or `-t` flag.
var toolsPath string

// installCmd verifies and installs the toolchain: Git, the Flutter SDK,
// and (after an opt-in prompt) the Android command line tools.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Verify and install the Flutter development toolchain",
	Run: func(cmd *cobra.Command, args []string) {
		tools := config.DefaultTools()
		if toolsPath != "" {
			tools = config.LoadTools(toolsPath)
		}

		confirm := installer.TerminalConfirmer{}
		pipeline := installer.NewPipeline(envpath.NewSynchronizer(envpath.NewSystemStore()), confirm)
		os.Exit(installAll(tools, pipeline, confirm))
	},
}

// ensurer is the slice of the pipeline the orchestration needs; it lets
// installAll be exercised with a scripted pipeline.
type ensurer interface {
	Ensure(tool config.ToolSpec) installer.Outcome
}

// installAll walks the tools in their declared dependency order and returns
// the process exit status: 0 on full success or graceful skip of optional
// components, 1 when a required tool's fallback chain is exhausted.
//
// Optional tools (those carrying a confirmation prompt) are attempted only
// after the user opts in; their failure aborts just their own sub-flow.
// For a required tool, the manual-installation guidance is the last message
// emitted before the non-zero exit.
func installAll(tools []config.ToolSpec, pipeline ensurer, confirm installer.Confirmer) int {
	for _, tool := range tools {
		if tool.ConfirmPrompt != "" && !confirm.Confirm(tool.ConfirmPrompt) {
			logger.Info("[INFO] Skipping %s installation\n", tool.Name)
			continue
		}

		logger.Info("[INFO] Checking for %s...\n", tool.Name)
		outcome := pipeline.Ensure(tool)
		switch outcome.Status {
		case installer.AlreadyPresent:
			logger.Info("[INFO] %s is already installed, skipping...\n", tool.Name)
		case installer.Installed:
			logger.Info("[INFO] %s successfully installed\n", tool.Name)
		case installer.Failed:
			if tool.Required {
				logger.Error("[ERROR] Failed to install %s, install manually from %s and try running again\n",
					tool.Name, tool.ManualURL)
				return 1
			}
			logger.Error("[ERROR] Failed to install %s, please continue install manually: %s\n",
				tool.Name, tool.ManualURL)
		}
	}
	return 0
}

// init sets up CLI flags and adds the command to the root command.
func init() {
	installCmd.Flags().StringVarP(&toolsPath, "tools", "t", "",
		"Path to a tools YAML file overriding the built-in definitions")
	rootCmd.AddCommand(installCmd)
}
