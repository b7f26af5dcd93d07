package config

import (
	"time"

	"github.com/schmitthub/prompter/internal/sources"
	"github.com/spf13/viper"
)

// DefaultSettings returns the built-in configuration. It matches
// sources.DefaultSources and sources.DefaultOptions.
func DefaultSettings() *Settings {
	g := sources.DefaultGlyphs()
	s := &Settings{
		Commands: CommandSettings{
			Privilege: "sudo -n true",
			Toolchain: "rustup show active-toolchain",
			Key:       "gpg --card-status",
			Timeout:   time.Second,
		},
		Markers: MarkerSettings{
			Toolchain: "Cargo.toml",
			Project:   "flake.nix",
		},
		Env: EnvSettings{
			Direnv: "DIRENV_DIR",
			Key:    "SSH_AUTH_SOCK",
		},
		Glyphs: GlyphSettings{
			Privilege: g.Privilege,
			Toolchain: g.Toolchain,
			Stable:    g.Stable,
			Beta:      g.Beta,
			Nightly:   g.Nightly,
			Other:     g.Other,
			Direnv:    g.DirectoryEnv,
			Key:       g.Key,
			Project:   g.Project,
		},
		Logging: LoggingSettings{
			FileEnabled: false,
			MaxSizeMB:   10,
			MaxAgeDays:  7,
			MaxBackups:  3,
		},
	}
	for _, src := range sources.DefaultSources() {
		s.Sources = append(s.Sources, SourceSettings{Kind: src.Kind.String(), Slot: src.Slot})
	}
	return s
}

// setDefaults registers every key of DefaultSettings with v so that
// environment overrides apply to keys absent from the file.
func setDefaults(v *viper.Viper) {
	d := DefaultSettings()

	srcs := make([]any, 0, len(d.Sources))
	for _, s := range d.Sources {
		srcs = append(srcs, map[string]any{"kind": s.Kind, "slot": s.Slot})
	}
	v.SetDefault("sources", srcs)

	v.SetDefault("commands.privilege", d.Commands.Privilege)
	v.SetDefault("commands.toolchain", d.Commands.Toolchain)
	v.SetDefault("commands.key", d.Commands.Key)
	v.SetDefault("commands.timeout", d.Commands.Timeout)

	v.SetDefault("markers.toolchain", d.Markers.Toolchain)
	v.SetDefault("markers.project", d.Markers.Project)

	v.SetDefault("env.direnv", d.Env.Direnv)
	v.SetDefault("env.key", d.Env.Key)

	v.SetDefault("glyphs.privilege", d.Glyphs.Privilege)
	v.SetDefault("glyphs.toolchain", d.Glyphs.Toolchain)
	v.SetDefault("glyphs.stable", d.Glyphs.Stable)
	v.SetDefault("glyphs.beta", d.Glyphs.Beta)
	v.SetDefault("glyphs.nightly", d.Glyphs.Nightly)
	v.SetDefault("glyphs.other", d.Glyphs.Other)
	v.SetDefault("glyphs.direnv", d.Glyphs.Direnv)
	v.SetDefault("glyphs.key", d.Glyphs.Key)
	v.SetDefault("glyphs.project", d.Glyphs.Project)

	v.SetDefault("logging.file_enabled", d.Logging.FileEnabled)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
}
