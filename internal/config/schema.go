package config

import (
	"fmt"
	"strings"
	"time"
)

// Settings is the schema of config.yaml.
type Settings struct {
	// Sources run in the order listed; sources sharing a slot compose in
	// that order.
	Sources  []SourceSettings `mapstructure:"sources" yaml:"sources"`
	Commands CommandSettings  `mapstructure:"commands" yaml:"commands"`
	Markers  MarkerSettings   `mapstructure:"markers" yaml:"markers"`
	Env      EnvSettings      `mapstructure:"env" yaml:"env"`
	Glyphs   GlyphSettings    `mapstructure:"glyphs" yaml:"glyphs"`
	Logging  LoggingSettings  `mapstructure:"logging" yaml:"logging"`
}

// SourceSettings declares one data source.
type SourceSettings struct {
	Kind string `mapstructure:"kind" yaml:"kind"`
	Slot int    `mapstructure:"slot" yaml:"slot"`
}

// CommandSettings are the external commands sources run. An empty command
// disables its source.
type CommandSettings struct {
	Privilege string `mapstructure:"privilege" yaml:"privilege"`
	Toolchain string `mapstructure:"toolchain" yaml:"toolchain"`
	Key       string `mapstructure:"key" yaml:"key"`
	// Timeout bounds each command; 0 disables the bound.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// MarkerSettings name the files searched for upward from the cwd.
type MarkerSettings struct {
	Toolchain string `mapstructure:"toolchain" yaml:"toolchain"`
	Project   string `mapstructure:"project" yaml:"project"`
}

// EnvSettings name the environment variables sources consult.
type EnvSettings struct {
	Direnv string `mapstructure:"direnv" yaml:"direnv"`
	Key    string `mapstructure:"key" yaml:"key"`
}

// GlyphSettings are the strings sources write into their slots.
type GlyphSettings struct {
	Privilege string `mapstructure:"privilege" yaml:"privilege"`
	Toolchain string `mapstructure:"toolchain" yaml:"toolchain"`
	Stable    string `mapstructure:"stable" yaml:"stable"`
	Beta      string `mapstructure:"beta" yaml:"beta"`
	Nightly   string `mapstructure:"nightly" yaml:"nightly"`
	Other     string `mapstructure:"other" yaml:"other"`
	Direnv    string `mapstructure:"direnv" yaml:"direnv"`
	Key       string `mapstructure:"key" yaml:"key"`
	Project   string `mapstructure:"project" yaml:"project"`
}

// LoggingSettings configure the optional log file.
type LoggingSettings struct {
	FileEnabled bool `mapstructure:"file_enabled" yaml:"file_enabled"`
	MaxSizeMB   int  `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays  int  `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxBackups  int  `mapstructure:"max_backups" yaml:"max_backups"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// MultiValidationError holds multiple validation errors
type MultiValidationError struct {
	Errors []error
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d configuration errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *MultiValidationError) Unwrap() []error {
	return e.Errors
}
