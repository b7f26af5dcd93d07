package cmdutil

import (
	"encoding/json"
	"io"
)

// WriteJSON writes data as two-space indented JSON followed by a newline.
// Slot values are full of glyphs and prompt escapes like %F{red}, so '<',
// '>' and '&' are written as-is rather than as \u escapes.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
