package sprintf

import (
	"io"
	"strings"
)

// Template is a parsed format string. It is immutable and safe for
// concurrent use; render it any number of times with different values.
type Template struct {
	source       string
	segments     []Segment
	placeholders int
}

// MustParse is like [Parse] but panics on error. It is meant for templates
// known at compile time.
func MustParse(template string) *Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the template text as given to [Parse].
func (t *Template) Source() string { return t.source }

// String returns the template text.
func (t *Template) String() string { return t.source }

// Segments returns a copy of the parsed segments in template order.
func (t *Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Placeholders returns the number of placeholder segments, i.e. the number
// of values [Template.Format] expects.
func (t *Template) Placeholders() int { return t.placeholders }

// Format renders the template with values consumed in placeholder order.
// The number of values must equal [Template.Placeholders].
func (t *Template) Format(values ...Value) (string, error) {
	if err := checkArity(t.placeholders, len(values)); err != nil {
		return "", err
	}
	var b strings.Builder
	next := 0
	for _, seg := range t.segments {
		switch s := seg.(type) {
		case Literal:
			b.WriteString(string(s))
		case Placeholder:
			out, err := Render(s, values[next])
			if err != nil {
				return "", withIndex(err, next)
			}
			b.WriteString(out)
			next++
		}
	}
	return b.String(), nil
}

// Write renders the template and writes the result to w. Nothing is written
// when rendering fails.
func (t *Template) Write(w io.Writer, values ...Value) error {
	s, err := t.Format(values...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func withIndex(err error, i int) error {
	if re, ok := err.(*RenderError); ok {
		re.Index = i
	}
	return err
}
