package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Loader reads config.yaml, layered over the built-in defaults and under
// PROMPTER_* environment overrides.
type Loader struct {
	path  string
	viper *viper.Viper
}

// NewLoader creates a loader for the file at path. An empty path means
// the default location (see ConfigFilePath).
func NewLoader(path string) (*Loader, error) {
	if path == "" {
		p, err := ConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config path: %w", err)
		}
		path = p
	}
	return &Loader{path: path, viper: viper.New()}, nil
}

// Path returns the full path to the config file.
func (l *Loader) Path() string {
	return l.path
}

// Exists reports whether the config file exists. Unreadable files count as
// missing.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load reads and validates the configuration. A missing file is not an
// error: the defaults (plus environment overrides) are returned.
func (l *Loader) Load() (*Settings, error) {
	v := l.viper
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.Exists() {
		v.SetConfigFile(l.path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load is a convenience for NewLoader(path).Load().
func Load(path string) (*Settings, error) {
	l, err := NewLoader(path)
	if err != nil {
		return nil, err
	}
	return l.Load()
}
