// Package sprintf renders printf-style templates at runtime.
//
// A template mixes literal text with placeholders of the form
//
//	%[0][width][.precision]kind
//
// and "%%" for a literal percent sign. Six kinds are supported:
//
//   - %s — [Text] verbatim
//   - %v — any [Value] in its canonical text form
//   - %d — [Int] in base 10
//   - %x, %X — [Int] in base 16, lower or upper case, no "0x" prefix
//   - %f — [Float] in fixed-point notation, 6 fraction digits by default
//
// Values are consumed strictly in placeholder order and their number must
// match the number of placeholders exactly.
//
// # Formatting
//
// [Format] parses and renders in one step; [Sprintf] does the same for
// plain Go arguments:
//
//	s, err := sprintf.Format("%06d", sprintf.Int(123))     // "000123"
//	s, err := sprintf.Sprintf("%04.02f | %X", 1.2, 255)   // "0001.20 | FF"
//
// # Padding
//
// Width and the zero flag apply to %d, %x, %X and %f. The sign counts toward
// the width and zero padding goes between the sign and the digits, so %06d
// renders -5 as "-00005". For %f the width covers the integer part only.
// %s and %v ignore width and never truncate.
//
// # Reuse
//
// [Parse] returns an immutable [Template] that can be rendered any number of
// times, concurrently. A [Cache] memoizes parses keyed by template text;
// create one and pass it where it is needed.
//
// # Call Expressions
//
// [ParseCall] reads an expression such as
//
//	"Hello, %s - test %d", user.name, user.tries
//
// and [Call.Execute] fills the variables from a [Resolver]. [DecodeValues]
// builds a [MapResolver] from a YAML document.
//
// # Errors
//
// Parse failures are a [*ParseError], value failures a [*RenderError] and
// count mismatches an [*ArityError]. Each wraps one of the exported sentinel
// errors for use with [errors.Is]:
//
//   - [ErrInvalidPlaceholder] — unexpected character inside a placeholder
//   - [ErrUnterminatedPlaceholder] — template ends inside a placeholder
//   - [ErrInvalidNumber] — width or precision above 65535
//   - [ErrTypeMismatch] — value kind does not fit the placeholder
//   - [ErrOverflow] — value cannot be represented
//   - [ErrTooFewValues], [ErrTooManyValues] — arity mismatch
//   - [ErrInvalidCall], [ErrUnresolvedVariable] — call expressions
package sprintf
