package sources

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
)

// Command is an external program and its arguments.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a configured command line into a Command using shell
// word rules. An empty line yields the zero Command, which disables the
// source that would run it.
func ParseCommand(line string) (Command, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("parsing command %q: %w", line, err)
	}
	if len(words) == 0 {
		return Command{}, nil
	}
	return Command{Name: words[0], Args: words[1:]}, nil
}

// MustParseCommand is ParseCommand for literals known to be valid.
func MustParseCommand(line string) Command {
	cmd, err := ParseCommand(line)
	if err != nil {
		panic(err)
	}
	return cmd
}

// IsZero reports whether the command is unset.
func (c Command) IsZero() bool {
	return c.Name == ""
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// waitDelay bounds how long Run waits for output pipes to close after the
// command has been killed.
const waitDelay = 100 * time.Millisecond

// Runner runs external commands for sources. Success means exit status 0.
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands as subprocesses with stdin closed, so nothing
// can prompt for input.
type ExecRunner struct {
	// Dir is the working directory of the subprocess.
	Dir string
	// Timeout bounds each command; zero means no bound.
	Timeout time.Duration
}

// Run executes cmd and returns its stdout.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	if cmd.IsZero() {
		return nil, fmt.Errorf("no command configured")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = r.Dir
	c.WaitDelay = waitDelay
	setProcessGroup(c)
	out, err := c.Output()
	if err != nil {
		return out, fmt.Errorf("running %s: %w", cmd, err)
	}
	return out, nil
}
