package sprintf

import (
	"fmt"
	"strconv"
	"strings"
)

// Call is a template bound to an ordered list of variable names, written as
//
//	"Hello, %s - attempt %d", user.name, user.tries
//
// The variables are looked up through a [Resolver] each time the call is
// executed, so a Call can be parsed once and evaluated against changing data.
type Call struct {
	Template  *Template
	Variables []string
}

// ParseCall parses a call expression: a Go string literal (interpreted or
// raw) followed by comma separated variable names. The number of variables
// must match the number of placeholders in the template.
func ParseCall(expr string) (*Call, error) {
	s := strings.TrimSpace(expr)
	quoted, err := strconv.QuotedPrefix(s)
	if err != nil {
		return nil, fmt.Errorf("%w: expression must start with a quoted template: %q", ErrInvalidCall, expr)
	}
	text, err := strconv.Unquote(quoted)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCall, err)
	}

	var names []string
	if rest := strings.TrimSpace(s[len(quoted):]); rest != "" {
		list, ok := strings.CutPrefix(rest, ",")
		if !ok {
			return nil, fmt.Errorf("%w: expected ',' after template, got %q", ErrInvalidCall, rest)
		}
		for part := range strings.SplitSeq(list, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			if strings.ContainsAny(name, " \t\r\n\"`") {
				return nil, fmt.Errorf("%w: malformed variable name %q", ErrInvalidCall, name)
			}
			names = append(names, name)
		}
	}

	t, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if err := checkArity(t.Placeholders(), len(names)); err != nil {
		return nil, err
	}
	return &Call{Template: t, Variables: names}, nil
}

// Execute resolves every variable through r and renders the template.
func (c *Call) Execute(r Resolver) (string, error) {
	values := make([]Value, len(c.Variables))
	for i, name := range c.Variables {
		v, ok := r.Resolve(name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnresolvedVariable, name)
		}
		values[i] = v
	}
	return c.Template.Format(values...)
}

// String reconstructs the call expression.
func (c *Call) String() string {
	parts := append([]string{strconv.Quote(c.Template.Source())}, c.Variables...)
	return strings.Join(parts, ", ")
}
