// Package vars implements the command the shell hook runs before every
// prompt: it computes the prompt variables and prints them as psvar
// assignments.
package vars

import (
	"context"
	"fmt"
	"io"

	"al.essio.dev/pkg/shellescape"
	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/schmitthub/prompter/internal/sources"
	"github.com/spf13/cobra"
)

// VarsOptions contains the options for the vars command.
type VarsOptions struct {
	IOStreams *iostreams.IOStreams
	Setup     func() cmdutil.PromptSetup
	Format    cmdutil.Format
}

// Slot is one prompt variable as shown by --format and --json.
type Slot struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// NewOptions extracts what the command needs from f.
func NewOptions(f *cmdutil.Factory) *VarsOptions {
	return &VarsOptions{
		IOStreams: f.IOStreams,
		Setup:     func() cmdutil.PromptSetup { return cmdutil.ResolvePrompt(f) },
	}
}

// NewCmdVars creates the vars command.
func NewCmdVars(f *cmdutil.Factory, runF func(context.Context, *VarsOptions) error) *cobra.Command {
	opts := NewOptions(f)
	var ff *cmdutil.FormatFlags

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Print prompt variables as psvar assignments",
		Long: `Computes every configured data source for the current directory and prints
one psvar assignment per slot, starting at 1. Every slot is printed, empty
ones included, so values from the previous prompt are cleared.

This is what the hook installed by 'prompter init' evaluates before each
prompt; running 'prompter' with no subcommand does the same.`,
		Example: `  eval "$(prompter vars)"

  # Inspect the slots
  prompter vars --json
  prompter vars --format '{{.Index}}: {{.Value}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Format = ff.Format
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return Run(cmd.Context(), opts)
		},
	}

	ff = cmdutil.AddFormatFlags(cmd)

	return cmd
}

// Run computes the variables and writes the assignments to stdout.
func Run(ctx context.Context, opts *VarsOptions) error {
	setup := opts.Setup()
	vars := setup.Config.Render(ctx, setup.Dispatcher)

	switch {
	case opts.Format.IsJSON():
		return cmdutil.WriteJSON(opts.IOStreams.Out, Slots(vars))
	case opts.Format.IsTemplate():
		return cmdutil.ExecuteTemplate(opts.IOStreams.Out, opts.Format, cmdutil.ToAny(Slots(vars)))
	default:
		return WriteAssignments(opts.IOStreams.Out, vars)
	}
}

// Slots lists the slots 1..len(vars)-1 with their values.
func Slots(vars sources.Vars) []Slot {
	slots := make([]Slot, 0, len(vars))
	for i := 1; i < len(vars); i++ {
		slots = append(slots, Slot{Index: i, Value: vars[i]})
	}
	return slots
}

// WriteAssignments prints psvar[n]=<quoted value> for n = 1..len(vars)-1.
func WriteAssignments(w io.Writer, vars sources.Vars) error {
	for i := 1; i < len(vars); i++ {
		if _, err := fmt.Fprintf(w, "psvar[%d]=%s\n", i, shellescape.Quote(vars[i])); err != nil {
			return err
		}
	}
	return nil
}
