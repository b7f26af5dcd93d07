package config

import (
	"fmt"

	"github.com/schmitthub/prompter/internal/logger"
	"github.com/schmitthub/prompter/internal/sources"
)

// DataSources converts the source list, preserving order.
func (s *Settings) DataSources() ([]sources.Source, error) {
	out := make([]sources.Source, 0, len(s.Sources))
	for i, src := range s.Sources {
		kind, err := sources.ParseKind(src.Kind)
		if err != nil {
			return nil, fmt.Errorf("sources[%d]: %w", i, err)
		}
		out = append(out, sources.Source{Kind: kind, Slot: src.Slot})
	}
	return out, nil
}

// SourceOptions builds the options sources run with.
func (s *Settings) SourceOptions() (sources.Options, error) {
	var opts sources.Options
	var err error
	if opts.PrivilegeCommand, err = sources.ParseCommand(s.Commands.Privilege); err != nil {
		return opts, err
	}
	if opts.ToolchainCommand, err = sources.ParseCommand(s.Commands.Toolchain); err != nil {
		return opts, err
	}
	if opts.KeyCommand, err = sources.ParseCommand(s.Commands.Key); err != nil {
		return opts, err
	}

	opts.ToolchainMarker = s.Markers.Toolchain
	opts.ProjectMarker = s.Markers.Project
	opts.DirectoryEnvVar = s.Env.Direnv
	opts.KeyEnvVar = s.Env.Key

	g := s.Glyphs
	opts.Glyphs = sources.Glyphs{
		Privilege:    g.Privilege,
		Toolchain:    g.Toolchain,
		Stable:       g.Stable,
		Beta:         g.Beta,
		Nightly:      g.Nightly,
		Other:        g.Other,
		DirectoryEnv: g.Direnv,
		Key:          g.Key,
		Project:      g.Project,
	}
	return opts, nil
}

// LoggerConfig adapts the logging section for logger.InitWithFile.
func (s *Settings) LoggerConfig() *logger.LoggingConfig {
	enabled := s.Logging.FileEnabled
	return &logger.LoggingConfig{
		FileEnabled: &enabled,
		MaxSizeMB:   s.Logging.MaxSizeMB,
		MaxAgeDays:  s.Logging.MaxAgeDays,
		MaxBackups:  s.Logging.MaxBackups,
	}
}
