package sprintf

import (
	"io"
)

// Format parses template and renders it with values. Errors are a
// [*ParseError], [*RenderError] or [*ArityError].
func Format(template string, values ...Value) (string, error) {
	t, err := Parse(template)
	if err != nil {
		return "", err
	}
	return t.Format(values...)
}

// Sprintf is like [Format] but converts plain Go arguments with [ValueOf].
func Sprintf(template string, args ...any) (string, error) {
	values, err := Values(args...)
	if err != nil {
		return "", err
	}
	return Format(template, values...)
}

// Write formats template with values and writes the result to w.
func Write(w io.Writer, template string, values ...Value) error {
	t, err := Parse(template)
	if err != nil {
		return err
	}
	return t.Write(w, values...)
}
