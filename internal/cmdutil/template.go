package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"al.essio.dev/pkg/shellescape"
)

// DefaultFuncMap returns the functions available to --format templates.
func DefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		"quote": shellescape.Quote,
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"join":  strings.Join,
		"truncate": func(s string, n int) string {
			r := []rune(s)
			if n < 0 {
				n = 0
			}
			if len(r) <= n {
				return s
			}
			return string(r[:n])
		},
	}
}

// ExecuteTemplate parses the template of f and executes it once per item,
// writing one line per item to w.
func ExecuteTemplate(w io.Writer, f Format, items []any) error {
	tmpl, err := template.New("").Funcs(DefaultFuncMap()).Parse(f.Template())
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	for _, item := range items {
		if err := tmpl.Execute(w, item); err != nil {
			return fmt.Errorf("template execution failed: %w", err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
