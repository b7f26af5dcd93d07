package cmdutil

import (
	"github.com/schmitthub/prompter/internal/config"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/schmitthub/prompter/internal/sources"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Configuration from flags (set before command execution)
	ConfigPath string
	Debug      bool

	// Version info (set at build time via ldflags)
	Version   string
	BuildDate string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Settings loads config.yaml from ConfigPath (or the default location).
	Settings func() (*config.Settings, error)
	// ConfigFilePath resolves the config file Settings reads.
	ConfigFilePath func() (string, error)

	// Env is the environment sources consult.
	Env func() sources.Env
	// Runner runs external commands for sources.
	Runner func(settings *config.Settings) sources.Runner
}
