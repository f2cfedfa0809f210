package sprintf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/sprintf"
)

func TestParseCall(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		expr      string
		template  string
		variables []string
	}{
		"variables": {
			expr:      `"Hello, %s - attempt %d", user.name, user.tries`,
			template:  "Hello, %s - attempt %d",
			variables: []string{"user.name", "user.tries"},
		},
		"no variables": {
			expr:     `"100%%"`,
			template: "100%%",
		},
		"trailing comma": {
			expr:      `"%d", a,`,
			template:  "%d",
			variables: []string{"a"},
		},
		"raw string": {
			expr:      "`say \"%s\"`, quote",
			template:  `say "%s"`,
			variables: []string{"quote"},
		},
		"escaped quote": {
			expr:      `  "a \"%v\"" , x  `,
			template:  `a "%v"`,
			variables: []string{"x"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			call, err := sprintf.ParseCall(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.template, call.Template.Source())
			assert.Equal(t, tt.variables, call.Variables)
		})
	}
}

func TestParseCallErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		expr string
		err  error
	}{
		"unquoted":          {expr: `Hello %s, name`, err: sprintf.ErrInvalidCall},
		"unterminated":      {expr: `"Hello %s, name`, err: sprintf.ErrInvalidCall},
		"missing comma":     {expr: `"%s" name`, err: sprintf.ErrInvalidCall},
		"spaced name":       {expr: `"%s", first name`, err: sprintf.ErrInvalidCall},
		"bad template":      {expr: `"%q", a`, err: sprintf.ErrInvalidPlaceholder},
		"too few variables": {expr: `"%s %s", a`, err: sprintf.ErrTooFewValues},
		"too many":          {expr: `"%s", a, b`, err: sprintf.ErrTooManyValues},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := sprintf.ParseCall(tt.expr)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCallExecute(t *testing.T) {
	t.Parallel()
	call, err := sprintf.ParseCall(`"Hello, %s - this is test number %d in %.06fs having 0x%02X%% matches and %06d zeroes", user.name, user.tries, test.seconds, test.percent, test.zeroes`)
	require.NoError(t, err)

	values := sprintf.MapResolver{
		"user.name":    sprintf.Text("FooUser"),
		"user.tries":   sprintf.Int(42),
		"test.seconds": sprintf.Float(1.4711),
		"test.percent": sprintf.Int(8),
		"test.zeroes":  sprintf.Int(6),
	}
	got, err := call.Execute(values)
	require.NoError(t, err)
	assert.Equal(t, "Hello, FooUser - this is test number 42 in 1.471100s having 0x08% matches and 000006 zeroes", got)
}

func TestCallExecuteUnresolved(t *testing.T) {
	t.Parallel()
	call, err := sprintf.ParseCall(`"%s", missing`)
	require.NoError(t, err)
	_, err = call.Execute(sprintf.MapResolver{})
	require.ErrorIs(t, err, sprintf.ErrUnresolvedVariable)
	assert.Contains(t, err.Error(), "missing")
}

func TestCallExecuteResolverFunc(t *testing.T) {
	t.Parallel()
	call, err := sprintf.ParseCall(`"%d/%d", a, b`)
	require.NoError(t, err)
	r := sprintf.ResolverFunc(func(name string) (sprintf.Value, bool) {
		return sprintf.Int(len(name)), true
	})
	got, err := call.Execute(r)
	require.NoError(t, err)
	assert.Equal(t, "1/1", got)
}

func TestCallExecuteTypeMismatch(t *testing.T) {
	t.Parallel()
	call, err := sprintf.ParseCall(`"%d", n`)
	require.NoError(t, err)
	_, err = call.Execute(sprintf.MapResolver{"n": sprintf.Text("x")})
	assert.ErrorIs(t, err, sprintf.ErrTypeMismatch)
}

func TestCallString(t *testing.T) {
	t.Parallel()
	call, err := sprintf.ParseCall(`"%s=%d",k,  v`)
	require.NoError(t, err)
	assert.Equal(t, `"%s=%d", k, v`, call.String())
}
