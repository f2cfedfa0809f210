package sprintf

import (
	"strconv"
	"strings"
)

// Kind identifies the directive letter of a placeholder.
type Kind int

const (
	KindString   Kind = iota // %s
	KindDecimal              // %d
	KindFloat                // %f
	KindHexLower             // %x
	KindHexUpper             // %X
	KindDisplay              // %v
)

var kindVerbs = [...]byte{
	KindString:   's',
	KindDecimal:  'd',
	KindFloat:    'f',
	KindHexLower: 'x',
	KindHexUpper: 'X',
	KindDisplay:  'v',
}

var kindNames = [...]string{
	KindString:   "string",
	KindDecimal:  "decimal",
	KindFloat:    "float",
	KindHexLower: "hex",
	KindHexUpper: "HEX",
	KindDisplay:  "display",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Verb returns the directive letter for k.
func (k Kind) Verb() byte {
	if k < 0 || int(k) >= len(kindVerbs) {
		return '?'
	}
	return kindVerbs[k]
}

func kindForVerb(c byte) (Kind, bool) {
	for k, v := range kindVerbs {
		if v == c {
			return Kind(k), true
		}
	}
	return 0, false
}

// Segment is one element of a parsed template: a [Literal] or a
// [Placeholder]. The set of implementations is closed.
type Segment interface {
	segment()
}

// Literal is a run of text copied to the output verbatim. Escaped "%%"
// sequences are already collapsed to a single '%'.
type Literal string

func (Literal) segment() {}

// Placeholder describes one directive occurrence in a template.
//
// Width and ZeroPad are kept for every kind but only affect numeric kinds.
// Precision is only ever set for [KindFloat].
type Placeholder struct {
	Kind         Kind
	ZeroPad      bool
	Width        int
	HasWidth     bool
	Precision    int
	HasPrecision bool
}

func (Placeholder) segment() {}

// String reconstructs the directive, e.g. "%04.2f".
func (p Placeholder) String() string {
	var b strings.Builder
	b.WriteByte('%')
	if p.ZeroPad {
		b.WriteByte('0')
	}
	if p.HasWidth {
		b.WriteString(strconv.Itoa(p.Width))
	}
	if p.HasPrecision {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p.Precision))
	}
	b.WriteByte(p.Kind.Verb())
	return b.String()
}
