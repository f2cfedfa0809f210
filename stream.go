package sprintf

import (
	"io"
	"iter"
)

// WriteIter renders t with values pulled from seq and writes to w as it
// goes: each literal and each rendered placeholder is written as soon as it
// is available. On error, output already written stays written.
//
// If seq ends before every placeholder is filled the error wraps
// [ErrTooFewValues]. If seq yields a value beyond the last placeholder the
// error wraps [ErrTooManyValues]; the rest of seq is not consumed, so the
// reported value count is the number seen so far.
func WriteIter(w io.Writer, t *Template, seq iter.Seq[Value]) error {
	next, stop := iter.Pull(seq)
	defer stop()

	seen := 0
	for _, seg := range t.segments {
		switch s := seg.(type) {
		case Literal:
			if _, err := io.WriteString(w, string(s)); err != nil {
				return err
			}
		case Placeholder:
			v, ok := next()
			if !ok {
				return &ArityError{Placeholders: t.placeholders, Values: seen, Err: ErrTooFewValues}
			}
			out, err := Render(s, v)
			if err != nil {
				return withIndex(err, seen)
			}
			seen++
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
	}
	if _, ok := next(); ok {
		return &ArityError{Placeholders: t.placeholders, Values: seen + 1, Err: ErrTooManyValues}
	}
	return nil
}

// WriteChan renders t with values received from ch.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, t *Template, ch <-chan Value) error {
	return WriteIter(w, t, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
