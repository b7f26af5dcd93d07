// Package init implements the config init subcommand.
package init

import (
	"context"
	"errors"
	"fmt"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/config"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/schmitthub/prompter/internal/logger"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the config init command.
type InitOptions struct {
	IOStreams      *iostreams.IOStreams
	ConfigFilePath func() (string, error)

	Force bool
}

// NewCmdInit creates the config init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams:      f.IOStreams,
		ConfigFilePath: f.ConfigFilePath,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Writes the built-in defaults to the configuration file so they can be
edited. An existing file is left untouched unless --force is given.`,
		Example: `  prompter config init
  prompter config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}

func initRun(_ context.Context, opts *InitOptions) error {
	ios := opts.IOStreams

	p, err := opts.ConfigFilePath()
	if err != nil {
		return err
	}

	if err := config.WriteDefault(p, opts.Force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Fprintf(ios.ErrOut, "%s already exists; use --force to overwrite it\n", p)
			return cmdutil.SilentError
		}
		return fmt.Errorf("writing %s: %w", p, err)
	}

	logger.Debug().Str("path", p).Bool("force", opts.Force).Msg("wrote default config")
	fmt.Fprintf(ios.ErrOut, "Wrote %s\n", p)
	return nil
}
