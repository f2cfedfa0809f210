package output

import (
	"encoding/json"
	"io"
)

// writeJSON encodes a single item as an object and several as an array.
func writeJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	if items == nil {
		items = []T{}
	}
	return enc.Encode(items)
}
