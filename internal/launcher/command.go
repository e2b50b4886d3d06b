// Package launcher builds the player invocation and performs the process
// handoff.
package launcher

import (
	"strconv"
	"strings"
)

// Player argument convention, owned by the external player.
const (
	flagList     = "-l"
	flagHardware = "--hw"
)

// hardwareThreshold is the queue length at which hardware-accelerated
// playback is requested.
const hardwareThreshold = 2

// Command is the fully-resolved player invocation.
type Command struct {
	Executable string
	Args       []string
}

// BuildCommand assembles the player arguments: the list flag always, the
// hardware flag when two or more videos are queued, then the paths in
// playlist order.
func BuildCommand(executable string, paths []string) Command {
	args := []string{flagList}
	if len(paths) >= hardwareThreshold {
		args = append(args, flagHardware)
	}
	args = append(args, paths...)
	return Command{Executable: executable, Args: args}
}

// Argv returns the full argument vector including the executable.
func (c Command) Argv() []string {
	return append([]string{c.Executable}, c.Args...)
}

// String renders the command with every token quoted, for debug display.
func (c Command) String() string {
	quoted := make([]string, 0, len(c.Args)+1)
	for _, token := range c.Argv() {
		quoted = append(quoted, strconv.Quote(token))
	}
	return strings.Join(quoted, " ")
}
