// Package path implements the config path subcommand.
package path

import (
	"context"
	"fmt"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/spf13/cobra"
)

// PathOptions holds options for the config path command.
type PathOptions struct {
	IOStreams      *iostreams.IOStreams
	ConfigFilePath func() (string, error)
}

// NewCmdPath creates the config path command.
func NewCmdPath(f *cmdutil.Factory, runF func(context.Context, *PathOptions) error) *cobra.Command {
	opts := &PathOptions{
		IOStreams:      f.IOStreams,
		ConfigFilePath: f.ConfigFilePath,
	}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Long: `Prints the path of the configuration file prompter reads, whether or not
the file exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pathRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func pathRun(_ context.Context, opts *PathOptions) error {
	p, err := opts.ConfigFilePath()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(opts.IOStreams.Out, p)
	return err
}
