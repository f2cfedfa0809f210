package sprintf

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fraction digits %f renders when the
// placeholder has no explicit precision.
const DefaultPrecision = 6

// Render formats a single value according to p.
//
// %s requires [Text] and %v accepts any value; both ignore width and the
// zero flag. %d, %x and %X require [Int]; %f requires [Float]. Numeric
// output is padded on the left up to the width: with zeros placed between
// the sign and the first digit when ZeroPad is set, with spaces before the
// sign otherwise. For %f the width covers the integer part only, so "%04.2f"
// renders 1.2 as "0001.20".
//
// Fraction digits are rounded from the exact binary value of the float,
// with exact ties going to the even digit.
//
// The returned error is always a [*RenderError] with Index -1.
func Render(p Placeholder, v Value) (string, error) {
	if v == nil {
		v = Display(nil)
	}
	switch p.Kind {
	case KindDisplay:
		return v.String(), nil
	case KindString:
		t, ok := v.(Text)
		if !ok {
			return "", mismatch(p, TextKind, v.Kind())
		}
		return string(t), nil
	case KindDecimal, KindHexLower, KindHexUpper:
		i, ok := v.(Int)
		if !ok {
			return "", mismatch(p, IntKind, v.Kind())
		}
		return renderInt(p, int64(i)), nil
	case KindFloat:
		f, ok := v.(Float)
		if !ok {
			return "", mismatch(p, FloatKind, v.Kind())
		}
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return "", &RenderError{Index: -1, Placeholder: p, Expected: FloatKind, Actual: FloatKind, Err: ErrOverflow}
		}
		return renderFloat(p, float64(f)), nil
	}
	return "", &RenderError{Index: -1, Placeholder: p, Actual: v.Kind(), Err: ErrTypeMismatch}
}

func mismatch(p Placeholder, want, got ValueKind) *RenderError {
	return &RenderError{Index: -1, Placeholder: p, Expected: want, Actual: got, Err: ErrTypeMismatch}
}

func renderInt(p Placeholder, i int64) string {
	base := 10
	if p.Kind == KindHexLower || p.Kind == KindHexUpper {
		base = 16
	}
	digits := strconv.FormatInt(i, base)
	if p.Kind == KindHexUpper {
		digits = strings.ToUpper(digits)
	}
	sign, digits := splitSign(digits)
	return pad(sign, digits, p)
}

func renderFloat(p Placeholder, f float64) string {
	prec := DefaultPrecision
	if p.HasPrecision {
		prec = p.Precision
	}
	s := strconv.FormatFloat(f, 'f', prec, 64)
	sign, s := splitSign(s)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := pad(sign, intPart, p)
	if hasFrac {
		out += "." + frac
	}
	return out
}

func splitSign(s string) (sign, digits string) {
	if strings.HasPrefix(s, "-") {
		return "-", s[1:]
	}
	return "", s
}

// pad left-pads sign+digits to p.Width. The sign counts toward the width.
func pad(sign, digits string, p Placeholder) string {
	n := p.Width - len(sign) - len(digits)
	if !p.HasWidth || n <= 0 {
		return sign + digits
	}
	if p.ZeroPad {
		return sign + strings.Repeat("0", n) + digits
	}
	return strings.Repeat(" ", n) + sign + digits
}
