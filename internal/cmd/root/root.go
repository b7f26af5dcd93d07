package root

import (
	"github.com/schmitthub/prompter/internal/cmd/config"
	initcmd "github.com/schmitthub/prompter/internal/cmd/init"
	"github.com/schmitthub/prompter/internal/cmd/preview"
	promptcmd "github.com/schmitthub/prompter/internal/cmd/prompt"
	"github.com/schmitthub/prompter/internal/cmd/vars"
	versioncmd "github.com/schmitthub/prompter/internal/cmd/version"
	"github.com/schmitthub/prompter/internal/cmdutil"
	internalconfig "github.com/schmitthub/prompter/internal/config"
	"github.com/schmitthub/prompter/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the prompter CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) (*cobra.Command, error) {
	varsOpts := vars.NewOptions(f)

	cmd := &cobra.Command{
		Use:   "prompter",
		Short: "Compute zsh prompt variables",
		Long: `Prompter computes a handful of prompt variables for the current directory
(repository, head and status, sudo, direnv, rust toolchain, hardware key,
project markers) and prints them as zsh psvar assignments. The prompt itself
is a fixed template that reads those variables.

Quick start:
  eval "$(prompter init zsh)"   # in ~/.zshrc
  prompter preview              # see what the prompt looks like here
  prompter config init          # write the default config to edit

Run without a subcommand, prompter behaves like 'prompter vars'.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f)
			logger.SetCommand(cmd.Name())

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", f.Debug).
				Str("config", f.ConfigPath).
				Msg("prompter starting")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return vars.Run(cmd.Context(), varsOpts)
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Path to the configuration file")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	cmd.AddCommand(vars.NewCmdVars(f, nil))
	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(promptcmd.NewCmdPrompt(f, nil))
	cmd.AddCommand(preview.NewCmdPreview(f, nil))
	cmd.AddCommand(config.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd, nil
}

// initializeLogger sets up the logger with file logging if configured.
// The prompt must still draw when the configuration is broken, so every
// failure falls back to console-only logging.
func initializeLogger(f *cmdutil.Factory) {
	if f.Settings == nil {
		logger.Init(f.Debug)
		return
	}

	settings, err := f.Settings()
	if err != nil {
		logger.Init(f.Debug)
		logger.Debug().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	if !settings.Logging.FileEnabled {
		logger.Init(f.Debug)
		return
	}

	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	if err := logger.InitWithFile(f.Debug, logsDir, settings.LoggerConfig()); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
