package sprintf

import (
	"fmt"
	"math"
	"strconv"
)

// ValueKind identifies the variant of a [Value].
type ValueKind int

const (
	TextKind ValueKind = iota
	IntKind
	FloatKind
	DisplayableKind
)

func (k ValueKind) String() string {
	switch k {
	case TextKind:
		return "text"
	case IntKind:
		return "integer"
	case FloatKind:
		return "float"
	case DisplayableKind:
		return "displayable"
	default:
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a typed argument for a placeholder. The set of implementations is
// closed: [Text], [Int], [Float] and [Displayable].
//
// String returns the canonical textual form used by the %v directive.
type Value interface {
	Kind() ValueKind
	String() string
	value()
}

// Text is a string value.
type Text string

func (Text) Kind() ValueKind  { return TextKind }
func (t Text) String() string { return string(t) }
func (Text) value()           {}

// Int is a signed integer value.
type Int int64

func (Int) Kind() ValueKind  { return IntKind }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (Int) value()           {}

// Float is a floating-point value.
type Float float64

func (Float) Kind() ValueKind { return FloatKind }

// String uses the shortest representation that round-trips.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (Float) value()           {}

// Displayable wraps any value that only has a textual representation, such
// as a bool or a [fmt.Stringer].
type Displayable struct {
	V any
}

// Display wraps v as a [Displayable].
func Display(v any) Displayable { return Displayable{V: v} }

func (Displayable) Kind() ValueKind { return DisplayableKind }

// String formats V with fmt.Sprint, which also prints "<nil>" for a nil
// pointer whose String method has a value receiver.
func (d Displayable) String() string {
	return fmt.Sprint(d.V)
}

func (Displayable) value() {}

// ValueOf converts a Go value into a [Value]. Strings become [Text], signed
// and unsigned integers become [Int], floats become [Float]; a Value is
// returned unchanged and everything else is wrapped in [Displayable].
//
// Unsigned integers above math.MaxInt64 yield a [*RenderError] wrapping
// [ErrOverflow].
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint64:
		return uintValue(x)
	case uintptr:
		return uintValue(uint64(x))
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	default:
		return Display(v), nil
	}
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, &RenderError{Index: -1, Actual: IntKind, Err: ErrOverflow}
	}
	return Int(u), nil
}

// Values converts each argument with [ValueOf]. A conversion failure reports
// the index of the offending argument.
func Values(args ...any) ([]Value, error) {
	out := make([]Value, len(args))
	for i, a := range args {
		v, err := ValueOf(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
