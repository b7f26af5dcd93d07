// Package show implements the config show subcommand.
package show

import (
	"context"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/config"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/spf13/cobra"
)

// ShowOptions holds options for the config show command.
type ShowOptions struct {
	IOStreams *iostreams.IOStreams
	Settings  func() (*config.Settings, error)
}

// NewCmdShow creates the config show command.
func NewCmdShow(f *cmdutil.Factory, runF func(context.Context, *ShowOptions) error) *cobra.Command {
	opts := &ShowOptions{
		IOStreams: f.IOStreams,
		Settings:  f.Settings,
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration prompter would use as YAML: built-in defaults,
overlaid with the configuration file, overlaid with PROMPTER_* environment
variables. An invalid configuration is reported as an error.`,
		Example: `  # Override a glyph for one invocation
  PROMPTER_GLYPHS_DIRENV=env prompter config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return showRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func showRun(_ context.Context, opts *ShowOptions) error {
	s, err := opts.Settings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(s)
	if err != nil {
		return err
	}
	_, err = opts.IOStreams.Out.Write(data)
	return err
}
