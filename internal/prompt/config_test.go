package prompt

import (
	"context"
	"testing"

	"github.com/schmitthub/prompter/internal/sources"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Prompts(t *testing.T) {
	cfg := Default()

	assert.Equal(t,
		"%(5V.%F{red}%m%f.%m)"+
			"%(1V.%F{blue}(%1v%)%f.)"+
			"%(6V.(%6v%).)"+
			"%(7V.%7v.)"+
			"%# ",
		cfg.LeftPrompt())

	assert.Equal(t,
		"%(1V.%2v%F{yellow}[%(8V.%8v .)%3v]%f%4v.%~)",
		cfg.RightPrompt())
}

func TestDefault_Sources(t *testing.T) {
	assert.Equal(t, sources.DefaultSources(), Default().Sources)
}

func TestConfig_Render_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	d := sources.NewDispatcher(sources.Env{
		Cwd:  dir,
		Home: dir,
		FS:   afero.NewMemMapFs(),
	}, nil, sources.DefaultOptions())

	cfg := Default()
	vars := cfg.Render(context.Background(), d)
	require.Len(t, vars, 9)
	for i, v := range vars {
		assert.Empty(t, v, "slot %d", i)
	}

	st := State{Vars: vars, User: "u", Host: "box.local", Cwd: dir, Home: dir}
	assert.Equal(t, "box% ", Preview(cfg.Left, st, plainRenderer()))
	assert.Equal(t, "~", Preview(cfg.Right, st, plainRenderer()))
}

func TestConfig_CustomLayout(t *testing.T) {
	cfg := Config{
		Left:  []Element{Bold{Username{}}, Char('@'), Hostname{}},
		Right: []Element{Ternary{Test: ExitCodeEquals(0), Else: []Element{Foreground{Colour: Red, Children: []Element{LastExit{}}}}}},
	}
	assert.Equal(t, "%B%n%b@%m", cfg.LeftPrompt())
	assert.Equal(t, "%(0?..%F{red}%?%f)", cfg.RightPrompt())
}
