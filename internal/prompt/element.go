// Package prompt describes zsh prompts as a tree of elements and renders
// them into prompt-escape strings.
//
// Rendering is independent of variable computation: Var and VarIsSet
// reference psvar slots that zsh substitutes when it draws the prompt.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// Element is one node of a prompt template. The set of element types is
// closed; the unexported marker method keeps it that way.
type Element interface {
	element()
}

type (
	// Username renders the user name (%n).
	Username struct{}
	// Hostname renders the short host name (%m).
	Hostname struct{}
	// Path renders the working directory with ~ for home (%~).
	Path struct{}
	// UserOrRoot renders # for root and % otherwise (%#).
	UserOrRoot struct{}
	// LastExit renders the exit status of the last command (%?).
	LastExit struct{}

	// Char is a single literal character.
	Char rune
	// Literal is literal text.
	Literal string
	// Var references psvar slot n (%nv).
	Var uint8

	// Bold renders its children in bold.
	Bold []Element
	// Underline renders its children underlined.
	Underline []Element

	// Foreground renders Children in the Colour.
	Foreground struct {
		Colour   Colour
		Children []Element
	}
	// Background renders Children on the Colour.
	Background struct {
		Colour   Colour
		Children []Element
	}

	// Ternary renders Then when Test holds at display time and Else
	// otherwise.
	Ternary struct {
		Test Test
		Then []Element
		Else []Element
	}
)

func (Username) element()   {}
func (Hostname) element()   {}
func (Path) element()       {}
func (UserOrRoot) element() {}
func (LastExit) element()   {}
func (Char) element()       {}
func (Literal) element()    {}
func (Var) element()        {}
func (Bold) element()       {}
func (Underline) element()  {}
func (Foreground) element() {}
func (Background) element() {}
func (Ternary) element()    {}

// Test is the condition of a Ternary. zsh evaluates it, not prompter.
type Test interface {
	// Code is the short encoding used inside %( ... ).
	Code() string
}

// VarIsSet holds when psvar slot n is set and non-empty.
type VarIsSet uint8

func (n VarIsSet) Code() string { return strconv.Itoa(int(n)) + "V" }

// ExitCodeEquals holds when the last exit status equals the value.
type ExitCodeEquals uint8

func (n ExitCodeEquals) Code() string { return strconv.Itoa(int(n)) + "?" }

// Colour is one of the eight named terminal colours.
type Colour int

const (
	Black Colour = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colourNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// String returns the lowercase colour name zsh accepts in %F{} and %K{}.
func (c Colour) String() string {
	if c < Black || c > White {
		return fmt.Sprintf("Colour(%d)", int(c))
	}
	return colourNames[c]
}

// ParseColour maps a colour name to a Colour.
func ParseColour(name string) (Colour, error) {
	for i, n := range colourNames {
		if strings.EqualFold(n, name) {
			return Colour(i), nil
		}
	}
	return 0, fmt.Errorf("unknown colour %q", name)
}
