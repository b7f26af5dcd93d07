package factory

import (
	"sync"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/config"
	"github.com/schmitthub/prompter/internal/iostreams"
	"github.com/schmitthub/prompter/internal/sources"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/prompter/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, buildDate string) *cmdutil.Factory {
	f := &cmdutil.Factory{
		Version:   version,
		BuildDate: buildDate,
		IOStreams: iostreams.NewIOStreams(),
	}

	// ConfigPath is only known once flags are parsed, so resolve it lazily.
	f.ConfigFilePath = func() (string, error) {
		if f.ConfigPath != "" {
			return f.ConfigPath, nil
		}
		return config.ConfigFilePath()
	}

	var (
		settingsOnce sync.Once
		settingsData *config.Settings
		settingsErr  error
	)
	f.Settings = func() (*config.Settings, error) {
		settingsOnce.Do(func() {
			path, err := f.ConfigFilePath()
			if err != nil {
				settingsErr = err
				return
			}
			settingsData, settingsErr = config.Load(path)
		})
		return settingsData, settingsErr
	}

	var (
		envOnce sync.Once
		env     sources.Env
	)
	f.Env = func() sources.Env {
		envOnce.Do(func() {
			env = sources.FromOS()
		})
		return env
	}

	f.Runner = func(s *config.Settings) sources.Runner {
		return &sources.ExecRunner{
			Dir:     f.Env().Cwd,
			Timeout: s.Commands.Timeout,
		}
	}

	return f
}
