package cmdutil

import (
	"fmt"

	"github.com/schmitthub/prompter/internal/config"
	"github.com/schmitthub/prompter/internal/logger"
	"github.com/schmitthub/prompter/internal/prompt"
	"github.com/schmitthub/prompter/internal/sources"
)

// PromptSetup is everything needed to compute and render the prompt.
type PromptSetup struct {
	Config     prompt.Config
	Dispatcher *sources.Dispatcher
}

// ResolvePrompt builds the prompt from the user's settings. The prompt must
// always draw, so a broken configuration is reported on stderr and the
// built-in defaults are used instead.
func ResolvePrompt(f *Factory) PromptSetup {
	settings, err := f.Settings()
	if err == nil {
		var setup PromptSetup
		if setup, err = promptFromSettings(f, settings); err == nil {
			return setup
		}
	}

	logger.Warn().Err(err).Msg("configuration unusable, using defaults")
	fmt.Fprintf(f.IOStreams.ErrOut, "prompter: %v (using defaults)\n", err)
	setup, _ := promptFromSettings(f, config.DefaultSettings())
	return setup
}

func promptFromSettings(f *Factory, s *config.Settings) (PromptSetup, error) {
	srcs, err := s.DataSources()
	if err != nil {
		return PromptSetup{}, err
	}
	opts, err := s.SourceOptions()
	if err != nil {
		return PromptSetup{}, err
	}

	cfg := prompt.Default()
	cfg.Sources = srcs
	return PromptSetup{
		Config:     cfg,
		Dispatcher: sources.NewDispatcher(f.Env(), f.Runner(s), opts),
	}, nil
}
