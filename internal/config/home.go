package config

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the configuration directory: $PROMPTER_CONFIG_DIR, else
// $XDG_CONFIG_HOME/prompter, else ~/.config/prompter.
func ConfigDir() (string, error) {
	return xdgDir(ConfigDirEnv, "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the state directory: $PROMPTER_STATE_DIR, else
// $XDG_STATE_HOME/prompter, else ~/.local/state/prompter.
func StateDir() (string, error) {
	return xdgDir(StateDirEnv, "XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// LogsDir returns the directory the log file is written to.
func LogsDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logsSubdir), nil
}

// ConfigFilePath returns the default configuration file path.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func xdgDir(override, xdg, fallback string) (string, error) {
	if dir := os.Getenv(override); dir != "" {
		return dir, nil
	}
	if base := os.Getenv(xdg); base != "" {
		return filepath.Join(base, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appDir), nil
}
