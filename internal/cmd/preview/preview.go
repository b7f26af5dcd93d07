// Package preview implements the command that draws the prompt locally the
// way zsh would, for checking a configuration without reloading the shell.
package preview

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/schmitthub/prompter/internal/prompt"
	"github.com/schmitthub/prompter/internal/sources"
	"github.com/spf13/cobra"
)

// PreviewOptions contains the options for the preview command.
type PreviewOptions struct {
	IOStreams *iostreams.IOStreams
	Setup     func() cmdutil.PromptSetup
	Env       func() sources.Env
	User      func() string
	Host      func() string
	Root      func() bool

	ExitCode int
}

// NewCmdPreview creates the preview command.
func NewCmdPreview(f *cmdutil.Factory, runF func(context.Context, *PreviewOptions) error) *cobra.Command {
	opts := &PreviewOptions{
		IOStreams: f.IOStreams,
		Setup:     func() cmdutil.PromptSetup { return cmdutil.ResolvePrompt(f) },
		Env:       f.Env,
		User:      currentUser,
		Host:      hostname,
		Root:      func() bool { return os.Geteuid() == 0 },
	}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the prompt for the current directory",
		Long: `Computes the prompt variables and expands both prompts locally, printing
the result instead of the escape strings. Colours are used when stdout is a
terminal and NO_COLOR is unset.`,
		Example: `  # Show the prompt as it looks after a failed command
  prompter preview --exit-code 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ExitCode < 0 || opts.ExitCode > 255 {
				return cmdutil.FlagErrorf("--exit-code must be between 0 and 255, got %d", opts.ExitCode)
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return previewRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.ExitCode, "exit-code", 0, "Exit status of the previous command")

	return cmd
}

func previewRun(ctx context.Context, opts *PreviewOptions) error {
	setup := opts.Setup()
	env := opts.Env()

	st := prompt.State{
		Vars:     setup.Config.Render(ctx, setup.Dispatcher),
		User:     opts.User(),
		Host:     opts.Host(),
		Cwd:      env.Cwd,
		Home:     env.Home,
		Root:     opts.Root(),
		ExitCode: opts.ExitCode,
	}

	r := opts.IOStreams.Renderer()
	out := opts.IOStreams.Out
	if _, err := fmt.Fprintf(out, "PS1  %s\n", prompt.Preview(setup.Config.Left, st, r)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "RPS1 %s\n", prompt.Preview(setup.Config.Right, st, r))
	return err
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return ""
	}
	return h
}
