package output

import (
	"fmt"
	"io"
)

// writePlain prints one line per item, preferring fmt.Stringer.
func writePlain[T any](w io.Writer, items []T) error {
	for _, item := range items {
		s, ok := any(item).(fmt.Stringer)
		var line string
		if ok {
			line = s.String()
		} else {
			line = fmt.Sprint(item)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
