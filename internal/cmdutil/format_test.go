package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantMode string
		wantTmpl string
		wantErr  bool
	}{
		{name: "empty string", raw: "", wantMode: ModeDefault},
		{name: "json", raw: "json", wantMode: ModeJSON},
		{name: "template", raw: "{{.Index}}={{.Value}}", wantMode: ModeTemplate, wantTmpl: "{{.Index}}={{.Value}}"},
		{name: "yaml is not supported", raw: "yaml", wantErr: true},
		{name: "plain word", raw: "zsh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.raw)
			if tt.wantErr {
				var flagErr *FlagError
				require.Error(t, err)
				assert.True(t, errors.As(err, &flagErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, f.mode)
			assert.Equal(t, tt.wantTmpl, f.Template())
			assert.Equal(t, tt.wantMode == ModeDefault, f.IsDefault())
			assert.Equal(t, tt.wantMode == ModeJSON, f.IsJSON())
			assert.Equal(t, tt.wantMode == ModeTemplate, f.IsTemplate())
		})
	}
}

func runWithFormatFlags(t *testing.T, args ...string) (*FormatFlags, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	ff := AddFormatFlags(cmd)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return ff, cmd.Execute()
}

func TestAddFormatFlags(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		ff, err := runWithFormatFlags(t)
		require.NoError(t, err)
		assert.True(t, ff.Format.IsDefault())
	})

	t.Run("json shorthand", func(t *testing.T) {
		ff, err := runWithFormatFlags(t, "--json")
		require.NoError(t, err)
		assert.True(t, ff.Format.IsJSON())
	})

	t.Run("template", func(t *testing.T) {
		ff, err := runWithFormatFlags(t, "--format", "{{.Value}}")
		require.NoError(t, err)
		assert.True(t, ff.Format.IsTemplate())
	})

	t.Run("mutually exclusive", func(t *testing.T) {
		_, err := runWithFormatFlags(t, "--json", "--format", "json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := runWithFormatFlags(t, "--format", "table")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format string")
	})

	t.Run("existing PreRunE runs first", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
		cmd.PreRunE = func(*cobra.Command, []string) error { return errors.New("first") }
		AddFormatFlags(cmd)
		cmd.SetArgs([]string{"--json"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		assert.EqualError(t, cmd.Execute(), "first")
	})
}

func TestToAny(t *testing.T) {
	got := ToAny([]int{1, 2})
	assert.Equal(t, []any{1, 2}, got)
}
