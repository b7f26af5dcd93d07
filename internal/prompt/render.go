package prompt

import (
	"strconv"
	"strings"
)

// Escape makes s safe to embed in a prompt string: every % and ) gains a
// leading %.
func Escape(s string) string {
	if !strings.ContainsAny(s, "%)") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r == '%' || r == ')' {
			b.WriteByte('%')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Render serialises a single element.
func Render(e Element) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

// RenderAll serialises elements in order and concatenates the results.
func RenderAll(elems []Element) string {
	var b strings.Builder
	renderAll(&b, elems)
	return b.String()
}

func renderAll(b *strings.Builder, elems []Element) {
	for _, e := range elems {
		render(b, e)
	}
}

func render(b *strings.Builder, e Element) {
	switch e := e.(type) {
	case Username:
		b.WriteString("%n")
	case Hostname:
		b.WriteString("%m")
	case Path:
		b.WriteString("%~")
	case UserOrRoot:
		b.WriteString("%#")
	case LastExit:
		b.WriteString("%?")
	case Char:
		b.WriteString(Escape(string(e)))
	case Literal:
		b.WriteString(Escape(string(e)))
	case Var:
		b.WriteString("%" + strconv.Itoa(int(e)) + "v")
	case Bold:
		wrapped(b, "%B", "%b", e)
	case Underline:
		wrapped(b, "%U", "%u", e)
	case Foreground:
		wrapped(b, "%F{"+e.Colour.String()+"}", "%f", e.Children)
	case Background:
		wrapped(b, "%K{"+e.Colour.String()+"}", "%k", e.Children)
	case Ternary:
		b.WriteString("%(" + e.Test.Code() + ".")
		renderAll(b, e.Then)
		b.WriteByte('.')
		renderAll(b, e.Else)
		b.WriteByte(')')
	}
}

func wrapped(b *strings.Builder, opening, closing string, children []Element) {
	b.WriteString(opening)
	renderAll(b, children)
	b.WriteString(closing)
}
