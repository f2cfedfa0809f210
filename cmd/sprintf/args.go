package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bjaus/sprintf"
)

// parseValue converts a command-line argument into a typed value.
//
// A prefix forces the type: "s:" text, "i:" integer (0x, 0o and 0b
// accepted), "f:" float, "v:" display-only text. Without a prefix the
// argument is an integer if it parses as one, a float if it parses as one
// and contains a digit, and text otherwise.
func parseValue(arg string) (sprintf.Value, error) {
	if prefix, rest, ok := strings.Cut(arg, ":"); ok && len(prefix) == 1 {
		switch prefix {
		case "s":
			return sprintf.Text(rest), nil
		case "v":
			return sprintf.Display(rest), nil
		case "i":
			n, err := strconv.ParseInt(rest, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("integer argument %q: %w", arg, err)
			}
			return sprintf.Int(n), nil
		case "f":
			f, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return nil, fmt.Errorf("float argument %q: %w", arg, err)
			}
			return sprintf.Float(f), nil
		}
	}
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return sprintf.Int(n), nil
	}
	if strings.ContainsAny(arg, "0123456789") {
		if f, err := strconv.ParseFloat(arg, 64); err == nil {
			return sprintf.Float(f), nil
		}
	}
	return sprintf.Text(arg), nil
}

func parseValues(args []string) ([]sprintf.Value, error) {
	values := make([]sprintf.Value, len(args))
	for i, a := range args {
		v, err := parseValue(a)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
