package output

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrUnsupportedBorder = errors.New("unsupported border style")
)

// Format is how the CLI prints its results.
type Format string

const (
	Plain    Format = "plain"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Table    Format = "table"
	Markdown Format = "markdown"
)

var formats = []Format{Plain, JSON, YAML, Table, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat converts a flag value into a [Format].
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides the cells of one result row. Required for Table and
// Markdown.
type Rower interface {
	Row() []string
}

// Headed provides column headers. Required for Markdown, optional for Table.
type Headed interface {
	Header() []string
}

// Titled renders a title above a table.
type Titled interface {
	Title() string
}

// Aligned sets per-column alignment. Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Bordered controls the table border style. Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // space-separated columns
	BorderASCII                      // +-+|
)

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
}

func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder converts a flag value into a [BorderStyle].
func ParseBorder(s string) (BorderStyle, error) {
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders items to w in format f.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case Plain:
		return writePlain(w, items)
	case JSON:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	case Table:
		return writeTable(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func missing[T any](f Format, iface string, item T) error {
	return fmt.Errorf("%w: format %q requires %s, not implemented by %T", ErrMissingInterface, f, iface, item)
}
