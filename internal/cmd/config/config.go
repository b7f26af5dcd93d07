// Package config groups the commands that locate, print, create and
// validate the configuration file.
package config

import (
	"github.com/schmitthub/prompter/internal/cmd/config/check"
	initcmd "github.com/schmitthub/prompter/internal/cmd/config/init"
	"github.com/schmitthub/prompter/internal/cmd/config/path"
	"github.com/schmitthub/prompter/internal/cmd/config/show"
	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long: `Commands for managing the prompter configuration file.

The file is read from $PROMPTER_CONFIG_DIR/config.yaml, else
$XDG_CONFIG_HOME/prompter/config.yaml, else ~/.config/prompter/config.yaml.
The global --config flag points at a different file.`,
	}

	cmd.AddCommand(path.NewCmdPath(f, nil))
	cmd.AddCommand(show.NewCmdShow(f, nil))
	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(check.NewCmdCheck(f, nil))

	return cmd
}
