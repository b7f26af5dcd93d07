package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigDirEnv, dir)
		t.Setenv("XDG_CONFIG_HOME", "/xdg")

		got, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")

		got, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg", "prompter"), got)
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(ConfigDirEnv, "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)

		got, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "prompter"), got)
	})
}

func TestLogsDir(t *testing.T) {
	state := t.TempDir()
	t.Setenv(StateDirEnv, state)

	got, err := LogsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, "logs"), got)

	t.Setenv(StateDirEnv, "")
	t.Setenv("XDG_STATE_HOME", "/state")
	got, err = LogsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/state", "prompter", "logs"), got)
}

func TestConfigFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	got, err := ConfigFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), got)
}
