// Package prompter is the CLI entry point shared by cmd/prompter and the
// end-to-end scripts.
package prompter

import (
	"context"
	"errors"
	"fmt"

	"github.com/schmitthub/prompter/internal/cmd/factory"
	"github.com/schmitthub/prompter/internal/cmd/root"
	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/logger"
	"github.com/schmitthub/prompter/internal/signals"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the prompter CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, BuildDate)

	rootCmd, err := root.NewCmdRoot(f, Version, BuildDate)
	if err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "failed to create root command: %v\n", err)
		return exitError
	}
	rootCmd.SilenceErrors = true

	ctx, stop := signals.WithInterrupt(context.Background())
	defer stop()

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return exitOk
	}

	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintln(f.IOStreams.ErrOut, err)
		fmt.Fprintln(f.IOStreams.ErrOut)
		fmt.Fprint(f.IOStreams.ErrOut, cmd.UsageString())
		return exitUsage
	}

	logger.Error().Err(err).Str("command", cmd.CommandPath()).Msg("command failed")
	fmt.Fprintf(f.IOStreams.ErrOut, "Error: %v\n", err)
	fmt.Fprintf(f.IOStreams.ErrOut, "Run '%s --help' for usage.\n", cmd.CommandPath())
	return exitError
}
