package docs

import (
	"github.com/spf13/cobra"
)

// newTestRootCmd builds a small tree shaped like the real CLI.
func newTestRootCmd() *cobra.Command {
	noop := func(*cobra.Command, []string) error { return nil }

	root := &cobra.Command{
		Use:   "prompter",
		Short: "Compute zsh prompt variables",
		Long:  "Prompter computes prompt variables and prints them as psvar assignments.",
		RunE:  noop,
	}
	root.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	root.PersistentFlags().String("config", "", "Path to the configuration file")

	preview := &cobra.Command{
		Use:     "preview",
		Short:   "Render the prompt for the current directory",
		Example: "  prompter preview --exit-code 1",
		RunE:    noop,
	}
	preview.Flags().Int("exit-code", 0, "Exit status of the previous command")

	config := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}
	configInit := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE:  noop,
	}
	configInit.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
	config.AddCommand(configInit, &cobra.Command{Use: "path", Short: "Print the configuration file location", RunE: noop})

	hidden := &cobra.Command{Use: "secret", Short: "Not documented", Hidden: true, RunE: noop}

	root.AddCommand(preview, config, hidden)
	return root
}

func find(root *cobra.Command, path ...string) *cobra.Command {
	c, _, err := root.Find(path)
	if err != nil {
		panic(err)
	}
	return c
}
