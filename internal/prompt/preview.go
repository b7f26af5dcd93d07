package prompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schmitthub/prompter/internal/sources"
)

// State is what zsh would know when drawing the prompt. Preview uses it to
// decide ternaries and substitute escapes locally.
type State struct {
	Vars     sources.Vars
	User     string
	Host     string
	Cwd      string
	Home     string
	Root     bool
	ExitCode int
}

func (s State) varAt(n int) string {
	if n < 0 || n >= len(s.Vars) {
		return ""
	}
	return s.Vars[n]
}

func (s State) path() string {
	if s.Home != "" && s.Cwd == s.Home {
		return "~"
	}
	return sources.AbbreviateHome(s.Cwd, s.Home)
}

// Preview evaluates elems against st and styles the result with r. Pass a
// renderer with the Ascii profile to get plain text.
func Preview(elems []Element, st State, r *lipgloss.Renderer) string {
	var b strings.Builder
	p := previewer{state: st, b: &b}
	p.all(elems, r.NewStyle())
	return b.String()
}

type previewer struct {
	state State
	b     *strings.Builder
}

func (p previewer) all(elems []Element, style lipgloss.Style) {
	for _, e := range elems {
		p.one(e, style)
	}
}

func (p previewer) text(s string, style lipgloss.Style) {
	if s == "" {
		return
	}
	p.b.WriteString(style.Render(s))
}

func (p previewer) one(e Element, style lipgloss.Style) {
	st := p.state
	switch e := e.(type) {
	case Username:
		p.text(st.User, style)
	case Hostname:
		host, _, _ := strings.Cut(st.Host, ".")
		p.text(host, style)
	case Path:
		p.text(st.path(), style)
	case UserOrRoot:
		if st.Root {
			p.text("#", style)
		} else {
			p.text("%", style)
		}
	case LastExit:
		p.text(strconv.Itoa(st.ExitCode), style)
	case Char:
		p.text(string(e), style)
	case Literal:
		p.text(string(e), style)
	case Var:
		p.text(st.varAt(int(e)), style)
	case Bold:
		p.all(e, style.Bold(true))
	case Underline:
		p.all(e, style.Underline(true))
	case Foreground:
		p.all(e.Children, style.Foreground(ansiColour(e.Colour)))
	case Background:
		p.all(e.Children, style.Background(ansiColour(e.Colour)))
	case Ternary:
		if p.holds(e.Test) {
			p.all(e.Then, style)
		} else {
			p.all(e.Else, style)
		}
	}
}

func (p previewer) holds(t Test) bool {
	switch t := t.(type) {
	case VarIsSet:
		return p.state.varAt(int(t)) != ""
	case ExitCodeEquals:
		return p.state.ExitCode == int(t)
	}
	return false
}

// ansiColour maps a Colour to its basic ANSI index.
func ansiColour(c Colour) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}
