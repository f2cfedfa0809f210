package sprintf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidPlaceholder      = errors.New("invalid placeholder")
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")
	ErrInvalidNumber           = errors.New("invalid number")
	ErrTypeMismatch            = errors.New("type mismatch")
	ErrOverflow                = errors.New("overflow")
	ErrTooFewValues            = errors.New("too few values")
	ErrTooManyValues           = errors.New("too many values")
	ErrInvalidCall             = errors.New("invalid call expression")
	ErrUnresolvedVariable      = errors.New("unresolved variable")
)

// ParseError reports a malformed template. Err is one of
// [ErrInvalidPlaceholder], [ErrUnterminatedPlaceholder] or [ErrInvalidNumber].
type ParseError struct {
	Template string
	// Pos is the byte offset of the offending character. For an
	// unterminated placeholder it is the offset of the opening '%'.
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d in %q", e.Err, e.Pos, e.Template)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Caret returns the template followed by a line with a '^' under the
// offending position. Columns are measured in terminal cells, so templates
// containing wide characters still line up.
func (e *ParseError) Caret() string {
	pos := min(max(e.Pos, 0), len(e.Template))
	col := runewidth.StringWidth(e.Template[:pos])
	return e.Template + "\n" + strings.Repeat(" ", col) + "^"
}

// RenderError reports a value that could not be rendered by its placeholder.
// Err is [ErrTypeMismatch] or [ErrOverflow].
type RenderError struct {
	// Index is the zero-based placeholder index, or -1 when the error was
	// raised outside a template (e.g. by [ValueOf]).
	Index       int
	Placeholder Placeholder
	Expected    ValueKind
	Actual      ValueKind
	Err         error
}

func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	b.WriteString(": ")
	if e.Index >= 0 {
		fmt.Fprintf(&b, "placeholder %d (%s) ", e.Index, e.Placeholder)
	}
	if errors.Is(e.Err, ErrTypeMismatch) {
		fmt.Fprintf(&b, "expects %s, got %s", e.Expected, e.Actual)
	} else {
		fmt.Fprintf(&b, "%s value not representable", e.Actual)
	}
	return b.String()
}

func (e *RenderError) Unwrap() error { return e.Err }

// ArityError reports a mismatch between placeholder and value counts.
// Err is [ErrTooFewValues] or [ErrTooManyValues].
type ArityError struct {
	Placeholders int
	Values       int
	Err          error
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: template has %d placeholders, got %d values", e.Err, e.Placeholders, e.Values)
}

func (e *ArityError) Unwrap() error { return e.Err }

func checkArity(placeholders, values int) error {
	switch {
	case values < placeholders:
		return &ArityError{Placeholders: placeholders, Values: values, Err: ErrTooFewValues}
	case values > placeholders:
		return &ArityError{Placeholders: placeholders, Values: values, Err: ErrTooManyValues}
	}
	return nil
}
