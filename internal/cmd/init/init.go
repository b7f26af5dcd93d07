package init

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/template"

	"al.essio.dev/pkg/shellescape"
	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/schmitthub/prompter/internal/prompt"
	"github.com/spf13/cobra"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	IOStreams  *iostreams.IOStreams
	Setup      func() cmdutil.PromptSetup
	Executable func() (string, error)
	ConfigPath func() string

	Shell string
}

// NewCmdInit creates the init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams:  f.IOStreams,
		Setup:      func() cmdutil.PromptSetup { return cmdutil.ResolvePrompt(f) },
		Executable: os.Executable,
		ConfigPath: func() string { return f.ConfigPath },
	}

	cmd := &cobra.Command{
		Use:   "init [zsh]",
		Short: "Print the shell integration script",
		Long: `Prints a script that sets PS1 and RPS1 to the configured prompt and installs
a precmd hook that refreshes the prompt variables before every prompt.

Only zsh is supported.`,
		Example: `  # in ~/.zshrc
  eval "$(prompter init zsh)"`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Shell = "zsh"
			if len(args) == 1 {
				opts.Shell = args[0]
			}
			if opts.Shell != "zsh" {
				return cmdutil.FlagErrorf("unsupported shell %q: only zsh is supported", opts.Shell)
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	return cmd
}

var zshScript = template.Must(template.New("zsh").Parse(`PS1={{ .Left }}
RPS1={{ .Right }}
_prompter_precmd() {
  eval "$({{ .Command }} vars)"
}
typeset -ga precmd_functions
if (( ! ${precmd_functions[(I)_prompter_precmd]} )); then
  precmd_functions+=(_prompter_precmd)
fi
`))

type scriptData struct {
	Left    string
	Right   string
	Command string
}

func initRun(_ context.Context, opts *InitOptions) error {
	exe, err := opts.Executable()
	if err != nil {
		return fmt.Errorf("locating prompter executable: %w", err)
	}

	command := shellescape.Quote(exe)
	if path := opts.ConfigPath(); path != "" {
		command += " --config " + shellescape.Quote(path)
	}

	return WriteScript(opts.IOStreams.Out, opts.Setup().Config, command)
}

// WriteScript renders the zsh integration for cfg. command is the already
// quoted invocation of prompter the hook runs.
func WriteScript(w io.Writer, cfg prompt.Config, command string) error {
	return zshScript.Execute(w, scriptData{
		Left:    shellescape.Quote(cfg.LeftPrompt()),
		Right:   shellescape.Quote(cfg.RightPrompt()),
		Command: command,
	})
}
