package report

import (
	"encoding/json"
	"io"
)

// JSON writes v, a report or a trial, as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
