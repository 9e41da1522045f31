package installer

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"flutter-bootstrap/internal/logger"
)

// ProcessRunner invokes an external command and reports its exit status as
// an error. Used for package-manager invocations, clone operations, and
// installer execution.
type ProcessRunner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands in the foreground with inherited stdio, so
// interactive installers (winget prompts, the Git installer UI) can talk to
// the user directly.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s failed: %w", name, err)
	}
	return nil
}
