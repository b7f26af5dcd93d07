// Package version implements the version command.
package version

import (
	"fmt"
	"strings"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdVersion creates the version command. The same text backs the root
// command's --version flag.
func NewCmdVersion(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the prompter version",
		Example: `  prompter version
  prompter version --short`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := Format(version, buildDate)
			if short {
				out = Number(version) + "\n"
			}
			_, err := fmt.Fprint(f.IOStreams.Out, out)
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return cmd
}

// Number strips the tag prefix from version: "v0.4.0" becomes "0.4.0".
func Number(version string) string {
	return strings.TrimPrefix(version, "v")
}

// Format renders "prompter version <number>", with the build date in
// parentheses when known.
func Format(version, buildDate string) string {
	if buildDate == "" {
		return fmt.Sprintf("prompter version %s\n", Number(version))
	}
	return fmt.Sprintf("prompter version %s (%s)\n", Number(version), buildDate)
}
