package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"
)

// Format mode constants for --format flag parsing.
const (
	ModeDefault  = ""
	ModeJSON     = "json"
	ModeTemplate = "template"
)

// Format is a parsed format specification from the --format flag.
type Format struct {
	mode     string
	template string
}

// ParseFormat parses a raw --format flag value into a Format.
//
// Recognized inputs:
//   - ""                      → ModeDefault
//   - "json"                  → ModeJSON
//   - "{{.Index}} {{.Value}}" → ModeTemplate (contains "{{")
//   - anything else           → FlagError
func ParseFormat(raw string) (Format, error) {
	switch {
	case raw == "":
		return Format{mode: ModeDefault}, nil
	case raw == "json":
		return Format{mode: ModeJSON}, nil
	case strings.Contains(raw, "{{"):
		return Format{mode: ModeTemplate, template: raw}, nil
	default:
		return Format{}, FlagErrorf("invalid format string: %q", raw)
	}
}

// IsDefault reports whether the command's native output was requested.
func (f Format) IsDefault() bool {
	return f.mode == ModeDefault
}

// IsJSON reports whether the format is JSON output.
func (f Format) IsJSON() bool {
	return f.mode == ModeJSON
}

// IsTemplate reports whether the format is a Go template.
func (f Format) IsTemplate() bool {
	return f.mode == ModeTemplate
}

// Template returns the Go template string, or "" if not a template format.
func (f Format) Template() string {
	return f.template
}

// FormatFlags holds parsed state for the --format and --json flags.
type FormatFlags struct {
	Format Format
}

// AddFormatFlags registers --format and --json on the command and chains
// PreRunE validation for mutual exclusivity.
//
// The returned FormatFlags is populated during PreRunE; commands read it
// in RunE after flag parsing is complete.
func AddFormatFlags(cmd *cobra.Command) *FormatFlags {
	ff := &FormatFlags{}

	cmd.Flags().String("format", "", `Output format: "json" or a Go template`)
	cmd.Flags().Bool("json", false, "Output as JSON (shorthand for --format json)")

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("format") && cmd.Flags().Changed("json") {
			return FlagErrorf("--format and --json are mutually exclusive")
		}

		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			ff.Format = Format{mode: ModeJSON}
			return nil
		}

		raw, _ := cmd.Flags().GetString("format")
		parsed, err := ParseFormat(raw)
		if err != nil {
			return err
		}
		ff.Format = parsed
		return nil
	}

	return ff
}

// ToAny converts a typed slice to []any for use with ExecuteTemplate.
func ToAny[T any](items []T) []any {
	result := make([]any, len(items))
	for i, v := range items {
		result[i] = v
	}
	return result
}
