package sprintf

import (
	"strconv"
	"strings"
)

// Parse scans template once and splits it into literal and placeholder
// segments. The grammar of a placeholder is
//
//	%[0][width][.precision]kind
//
// where kind is one of s, d, f, x, X, v. "%%" is an escaped percent sign.
// Width and precision are limited to 65535.
//
// The returned error is always a [*ParseError].
func Parse(template string) (*Template, error) {
	p := parser{src: template}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &Template{source: template, segments: p.segs, placeholders: p.count}, nil
}

type parser struct {
	src   string
	pos   int
	lit   strings.Builder
	segs  []Segment
	count int
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		i := strings.IndexByte(p.src[p.pos:], '%')
		if i < 0 {
			p.lit.WriteString(p.src[p.pos:])
			break
		}
		p.lit.WriteString(p.src[p.pos : p.pos+i])
		p.pos += i
		if p.pos+1 < len(p.src) && p.src[p.pos+1] == '%' {
			p.lit.WriteByte('%')
			p.pos += 2
			continue
		}
		p.flush()
		ph, err := p.placeholder()
		if err != nil {
			return err
		}
		p.segs = append(p.segs, ph)
		p.count++
	}
	p.flush()
	return nil
}

func (p *parser) flush() {
	if p.lit.Len() == 0 {
		return
	}
	p.segs = append(p.segs, Literal(p.lit.String()))
	p.lit.Reset()
}

// placeholder parses a directive starting at the '%' under p.pos.
func (p *parser) placeholder() (Placeholder, error) {
	start := p.pos
	p.pos++

	var ph Placeholder
	if p.peek() == '0' {
		ph.ZeroPad = true
		p.pos++
	}

	width, hasWidth, err := p.number()
	if err != nil {
		return ph, err
	}
	ph.Width, ph.HasWidth = width, hasWidth

	var prec int
	var hasPrec bool
	if p.peek() == '.' {
		p.pos++
		if prec, hasPrec, err = p.number(); err != nil {
			return ph, err
		}
	}

	if p.pos >= len(p.src) {
		return ph, p.fail(start, ErrUnterminatedPlaceholder)
	}
	kind, ok := kindForVerb(p.src[p.pos])
	if !ok {
		return ph, p.fail(p.pos, ErrInvalidPlaceholder)
	}
	p.pos++

	ph.Kind = kind
	if kind == KindFloat {
		ph.Precision, ph.HasPrecision = prec, hasPrec
	}
	return ph, nil
}

// number consumes a run of ASCII digits. An empty run reports ok == false.
func (p *parser) number() (n int, ok bool, err error) {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, false, nil
	}
	v, perr := strconv.ParseUint(p.src[start:p.pos], 10, 16)
	if perr != nil {
		return 0, false, p.fail(start, ErrInvalidNumber)
	}
	return int(v), true, nil
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) fail(pos int, err error) *ParseError {
	return &ParseError{Template: p.src, Pos: pos, Err: err}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
