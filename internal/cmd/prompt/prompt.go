// Package prompt implements the command that prints one side of the
// prompt template.
package prompt

import (
	"context"
	"fmt"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/spf13/cobra"
)

// Side selects which prompt to print.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// PromptOptions contains the options for the prompt command.
type PromptOptions struct {
	IOStreams *iostreams.IOStreams
	Setup     func() cmdutil.PromptSetup

	Side Side
}

// NewCmdPrompt creates the prompt command.
func NewCmdPrompt(f *cmdutil.Factory, runF func(context.Context, *PromptOptions) error) *cobra.Command {
	opts := &PromptOptions{
		IOStreams: f.IOStreams,
		Setup:     func() cmdutil.PromptSetup { return cmdutil.ResolvePrompt(f) },
	}

	cmd := &cobra.Command{
		Use:   "prompt <left|right>",
		Short: "Print the escaped prompt template for one side",
		Long: `Prints the zsh prompt-escape string for the left (PS1) or right (RPS1)
prompt. The string references psvar slots and is meant to be assigned
verbatim; zsh expands it when drawing the prompt.`,
		Example: `  PS1=$(prompter prompt left)`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(Left), string(Right)},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch Side(args[0]) {
			case Left, Right:
				opts.Side = Side(args[0])
			default:
				return cmdutil.FlagErrorf("invalid side %q: must be left or right", args[0])
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return promptRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func promptRun(_ context.Context, opts *PromptOptions) error {
	cfg := opts.Setup().Config
	out := cfg.LeftPrompt()
	if opts.Side == Right {
		out = cfg.RightPrompt()
	}
	_, err := fmt.Fprintln(opts.IOStreams.Out, out)
	return err
}
