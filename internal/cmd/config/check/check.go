package check

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

// CheckOptions holds options for the config check command.
type CheckOptions struct {
	IOStreams      *iostreams.IOStreams
	ConfigFilePath func() (string, error)
}

// NewCmdCheck creates the config check command.
func NewCmdCheck(f *cmdutil.Factory, runF func(context.Context, *CheckOptions) error) *cobra.Command {
	opts := &CheckOptions{
		IOStreams:      f.IOStreams,
		ConfigFilePath: f.ConfigFilePath,
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		Long: `Loads the configuration file together with any PROMPTER_* environment
overrides and reports every problem found.

Checks for:
  - Unknown source kinds and slots below 1
  - Commands that cannot be split into arguments
  - Negative timeouts and log rotation limits`,
		Example: `  prompter config check`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return checkRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func checkRun(_ context.Context, opts *CheckOptions) error {
	ios := opts.IOStreams

	p, err := opts.ConfigFilePath()
	if err != nil {
		return err
	}
	logger.Debug().Str("path", p).Msg("checking configuration")

	loader, err := config.NewLoader(p)
	if err != nil {
		return err
	}
	if !loader.Exists() {
		fmt.Fprintf(ios.ErrOut, "%s not found; the built-in defaults are in use\n", p)
		fmt.Fprintln(ios.ErrOut, "Run 'prompter config init' to create it")
	}

	s, err := loader.Load()
	if err != nil {
		var multi *config.MultiValidationError
		if errors.As(err, &multi) {
			fmt.Fprintln(ios.ErrOut, "Configuration validation failed")
			for _, e := range multi.Errors {
				fmt.Fprintf(ios.ErrOut, "  - %s\n", e)
			}
			return cmdutil.SilentError
		}
		return err
	}

	fmt.Fprintln(ios.ErrOut, "Configuration is valid")
	fmt.Fprintln(ios.ErrOut)
	for _, src := range s.Sources {
		fmt.Fprintf(ios.ErrOut, "  %-7s slot %d\n", src.Kind, src.Slot)
	}
	return nil
}
