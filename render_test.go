package sprintf_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/sprintf"
)

type color int

func (c color) String() string { return [...]string{"red", "green"}[c] }

type label struct{ name string }

func (l label) String() string { return l.name }

func placeholder(t *testing.T, src string) sprintf.Placeholder {
	t.Helper()
	tmpl, err := sprintf.Parse(src)
	require.NoError(t, err)
	segs := tmpl.Segments()
	require.Len(t, segs, 1)
	return segs[0].(sprintf.Placeholder)
}

func TestRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		directive string
		value     sprintf.Value
		want      string
	}{
		// Decimal
		"decimal":                  {"%d", sprintf.Int(42), "42"},
		"decimal zero":             {"%d", sprintf.Int(0), "0"},
		"decimal zero padded":      {"%06d", sprintf.Int(123), "000123"},
		"decimal negative zeros":   {"%06d", sprintf.Int(-5), "-00005"},
		"decimal negative spaces":  {"%6d", sprintf.Int(-5), "    -5"},
		"decimal space padded":     {"%5d", sprintf.Int(42), "   42"},
		"decimal wider than width": {"%2d", sprintf.Int(123), "123"},
		"decimal sign fills width": {"%03d", sprintf.Int(-123), "-123"},
		"decimal zero flag only":   {"%0d", sprintf.Int(7), "7"},
		"decimal min int64":        {"%d", sprintf.Int(math.MinInt64), "-9223372036854775808"},

		// Hex
		"hex lower":          {"%x", sprintf.Int(255), "ff"},
		"hex upper":          {"%X", sprintf.Int(255), "FF"},
		"hex zero padded":    {"%08x", sprintf.Int(255), "000000ff"},
		"hex space padded":   {"%4X", sprintf.Int(10), "   A"},
		"hex negative":       {"%x", sprintf.Int(-255), "-ff"},
		"hex negative zeros": {"%04X", sprintf.Int(-10), "-00A"},
		"hex min int64":      {"%X", sprintf.Int(math.MinInt64), "-8000000000000000"},
		"hex upper 2 digits": {"%02X", sprintf.Int(8), "08"},

		// Float
		"float width and precision":   {"%04.02f", sprintf.Float(1.2), "0001.20"},
		"float default precision":     {"%f", sprintf.Float(1.5), "1.500000"},
		"float empty precision":       {"%.f", sprintf.Float(1), "1.000000"},
		"float precision zero":        {"%.0f", sprintf.Float(3.7), "4"},
		"float tie to even down":      {"%.0f", sprintf.Float(2.5), "2"},
		"float tie to even up":        {"%.0f", sprintf.Float(3.5), "4"},
		"float exact tie fraction":    {"%.2f", sprintf.Float(42.125), "42.12"},
		"float truncating precision":  {"%.2f", sprintf.Float(42.123), "42.12"},
		"float rounding carries":      {"%.1f", sprintf.Float(9.96), "10.0"},
		"float negative zero padded":  {"%05.1f", sprintf.Float(-1.5), "-0001.5"},
		"float negative space padded": {"%5.1f", sprintf.Float(-1.5), "   -1.5"},
		"float zero":                  {"%.3f", sprintf.Float(0), "0.000"},
		"float long precision":        {"%.06f", sprintf.Float(1.4711), "1.471100"},
		"float width without zero":    {"%4.2f", sprintf.Float(1.2), "   1.20"},
		"float precision zero padded": {"%03.0f", sprintf.Float(5), "005"},

		// String and display
		"string":                    {"%s", sprintf.Text("abc"), "abc"},
		"string ignores width":      {"%5s", sprintf.Text("ab"), "ab"},
		"string never truncates":    {"%02s", sprintf.Text("abcdef"), "abcdef"},
		"display text":              {"%v", sprintf.Text("abc"), "abc"},
		"display int":               {"%v", sprintf.Int(-42), "-42"},
		"display float":             {"%v", sprintf.Float(1.5), "1.5"},
		"display bool":              {"%v", sprintf.Display(true), "true"},
		"display stringer":          {"%v", sprintf.Display(color(1)), "green"},
		"display ignores width":     {"%08v", sprintf.Int(5), "5"},
		"display nil":               {"%v", nil, "<nil>"},
		"display float exponent":    {"%v", sprintf.Float(1e21), "1e+21"},
		"display displayable slice": {"%v", sprintf.Display([]int{1, 2}), "[1 2]"},
		"display nil stringer":      {"%v", sprintf.Display((*label)(nil)), "<nil>"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := sprintf.Render(placeholder(t, tt.directive), tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSprintfNilStringer(t *testing.T) {
	t.Parallel()
	var l *label
	got, err := sprintf.Sprintf("[%v]", l)
	require.NoError(t, err)
	assert.Equal(t, "[<nil>]", got)
}

func TestRenderTypeMismatch(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		directive string
		value     sprintf.Value
		expected  sprintf.ValueKind
		actual    sprintf.ValueKind
	}{
		"decimal given text":    {"%d", sprintf.Text("abc"), sprintf.IntKind, sprintf.TextKind},
		"decimal given float":   {"%d", sprintf.Float(1), sprintf.IntKind, sprintf.FloatKind},
		"hex given displayable": {"%x", sprintf.Display(true), sprintf.IntKind, sprintf.DisplayableKind},
		"float given int":       {"%f", sprintf.Int(1), sprintf.FloatKind, sprintf.IntKind},
		"string given int":      {"%s", sprintf.Int(1), sprintf.TextKind, sprintf.IntKind},
		"string given nil":      {"%s", nil, sprintf.TextKind, sprintf.DisplayableKind},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := sprintf.Render(placeholder(t, tt.directive), tt.value)
			require.ErrorIs(t, err, sprintf.ErrTypeMismatch)
			var re *sprintf.RenderError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.expected, re.Expected)
			assert.Equal(t, tt.actual, re.Actual)
			assert.Equal(t, -1, re.Index)
		})
	}
}

func TestRenderNonFiniteFloat(t *testing.T) {
	t.Parallel()
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := sprintf.Render(placeholder(t, "%f"), sprintf.Float(f))
		assert.ErrorIs(t, err, sprintf.ErrOverflow)
	}
}

func TestRenderNonFiniteDisplay(t *testing.T) {
	t.Parallel()
	got, err := sprintf.Render(placeholder(t, "%v"), sprintf.Float(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, "+Inf", got)
}
