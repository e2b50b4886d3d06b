//go:build windows

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Launch runs the player as a child with inherited stdio and exits with
// the child's exit code, preserving the handoff contract on a platform
// without process-image replacement. Returns only when the player could
// not be started.
func Launch(cmd Command) error {
	child := exec.Command(cmd.Executable, cmd.Args...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("run player %s: %w", cmd.Executable, err)
	}
	os.Exit(0)
	return nil
}
