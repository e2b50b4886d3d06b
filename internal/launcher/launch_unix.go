//go:build !windows

package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Launch replaces the current process image with the player. stdio is
// inherited by the new image. On success this call does not return.
func Launch(cmd Command) error {
	exePath, err := exec.LookPath(cmd.Executable)
	if err != nil {
		return fmt.Errorf("locate player %s: %w", cmd.Executable, err)
	}
	if err := syscall.Exec(exePath, cmd.Argv(), os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", exePath, err)
	}
	return nil
}
