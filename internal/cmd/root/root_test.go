package root

import (
	"bytes"
	"testing"

	"github.com/schmitthub/prompter/internal/cmdutil"
	"github.com/schmitthub/prompter/internal/config"
	"github.com/schmitthub/prompter/internal/iostreams/iostreamstest"
	"github.com/schmitthub/prompter/internal/logger"
	"github.com/schmitthub/prompter/internal/sources"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory(t *testing.T) (*cmdutil.Factory, *iostreamstest.TestIOStreams) {
	t.Helper()
	t.Cleanup(func() { logger.Init(false) })

	tio := iostreamstest.New()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/flake.nix", nil, 0o644))

	settings := config.DefaultSettings()
	settings.Sources = []config.SourceSettings{
		{Kind: "direnv", Slot: 1},
		{Kind: "flake", Slot: 2},
	}

	f := &cmdutil.Factory{
		Version:   "1.0.0",
		BuildDate: "2026-10-01",
		IOStreams: tio.IOStreams,
		Settings:  func() (*config.Settings, error) { return settings, nil },
		ConfigFilePath: func() (string, error) {
			return "/cfg/config.yaml", nil
		},
		Env: func() sources.Env {
			return sources.Env{
				Cwd:    "/work",
				Lookup: sources.MapLookup(map[string]string{"DIRENV_DIR": "-/work"}),
				FS:     fs,
			}
		},
		Runner: func(*config.Settings) sources.Runner { return nil },
	}
	return f, tio
}

func TestNewCmdRoot(t *testing.T) {
	f, _ := testFactory(t)
	cmd, err := NewCmdRoot(f, "1.0.0", "2026-10-01")
	require.NoError(t, err)

	assert.Equal(t, "prompter", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"vars", "init", "prompt", "preview", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestNewCmdRoot_GlobalFlags(t *testing.T) {
	f, _ := testFactory(t)
	cmd, err := NewCmdRoot(f, "1.0.0", "")
	require.NoError(t, err)

	debugFlag := cmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, debugFlag)
	assert.Equal(t, "D", debugFlag.Shorthand)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestNewCmdRoot_DefaultPrintsVars(t *testing.T) {
	f, tio := testFactory(t)
	cmd, err := NewCmdRoot(f, "1.0.0", "")
	require.NoError(t, err)

	cmd.SetArgs([]string{"--config", "/elsewhere.yaml"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "psvar[1]='📂'\npsvar[2]='❄ '\n", tio.OutBuf.String())
	assert.Equal(t, "/elsewhere.yaml", f.ConfigPath)
	assert.Empty(t, tio.ErrBuf.String())
}

func TestNewCmdRoot_MatchesVarsSubcommand(t *testing.T) {
	f, tio := testFactory(t)
	cmd, err := NewCmdRoot(f, "1.0.0", "")
	require.NoError(t, err)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	bare := tio.OutBuf.String()

	f2, tio2 := testFactory(t)
	cmd2, err := NewCmdRoot(f2, "1.0.0", "")
	require.NoError(t, err)
	cmd2.SetArgs([]string{"vars"})
	require.NoError(t, cmd2.Execute())

	assert.Equal(t, bare, tio2.OutBuf.String())
}

func TestNewCmdRoot_RejectsUnknownArgs(t *testing.T) {
	f, _ := testFactory(t)
	cmd, err := NewCmdRoot(f, "1.0.0", "")
	require.NoError(t, err)
	cmd.SetArgs([]string{"bogus"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestNewCmdRoot_Debug(t *testing.T) {
	f, _ := testFactory(t)
	cmd, err := NewCmdRoot(f, "1.0.0", "")
	require.NoError(t, err)
	cmd.SetArgs([]string{"version", "--debug"})
	require.NoError(t, cmd.Execute())
	assert.True(t, f.Debug)
}
