package prompt

import (
	"context"

	"github.com/schmitthub/prompter/internal/sources"
)

// Config is the composition root: the two prompt sides and the sources
// that compute the variables they reference.
//
// The default layout reads these slots:
//
//	1 active VCS
//	2 repository root
//	3 head info and status code
//	4 path below the repository root
//	5 set when sudo works without a password
//	6 labels (direnv, rust toolchain)
//	7 hardware key available
//	8 project marker glyph
type Config struct {
	Left    []Element
	Right   []Element
	Sources []sources.Source
}

// Default returns the stock prompt.
func Default() Config {
	return Config{
		Left:    DefaultLeft(),
		Right:   DefaultRight(),
		Sources: sources.DefaultSources(),
	}
}

// DefaultLeft is host (red when sudo is available), the VCS name, labels,
// the key glyph and the prompt character.
func DefaultLeft() []Element {
	return []Element{
		Ternary{
			Test: VarIsSet(5),
			Then: []Element{Foreground{Colour: Red, Children: []Element{Hostname{}}}},
			Else: []Element{Hostname{}},
		},
		Ternary{
			Test: VarIsSet(1),
			Then: []Element{Foreground{Colour: Blue, Children: []Element{Literal("("), Var(1), Literal(")")}}},
		},
		Ternary{
			Test: VarIsSet(6),
			Then: []Element{Literal("("), Var(6), Literal(")")},
		},
		Ternary{
			Test: VarIsSet(7),
			Then: []Element{Var(7)},
		},
		UserOrRoot{},
		Literal(" "),
	}
}

// DefaultRight is the repository view (root, [marker head], path below)
// inside a repository and the plain path elsewhere.
func DefaultRight() []Element {
	return []Element{
		Ternary{
			Test: VarIsSet(1),
			Then: []Element{
				Var(2),
				Foreground{Colour: Yellow, Children: []Element{
					Char('['),
					Ternary{Test: VarIsSet(8), Then: []Element{Var(8), Char(' ')}},
					Var(3),
					Char(']'),
				}},
				Var(4),
			},
			Else: []Element{Path{}},
		},
	}
}

// LeftPrompt renders the left side.
func (c Config) LeftPrompt() string {
	return RenderAll(c.Left)
}

// RightPrompt renders the right side.
func (c Config) RightPrompt() string {
	return RenderAll(c.Right)
}

// Render computes the variable array by running every source in order.
func (c Config) Render(ctx context.Context, d *sources.Dispatcher) sources.Vars {
	return d.FillAll(ctx, c.Sources)
}
