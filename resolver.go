package sprintf

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Resolver looks up a variable by name.
type Resolver interface {
	Resolve(name string) (Value, bool)
}

// ResolverFunc adapts a function to the [Resolver] interface.
type ResolverFunc func(name string) (Value, bool)

func (f ResolverFunc) Resolve(name string) (Value, bool) { return f(name) }

// MapResolver resolves variables from a map.
type MapResolver map[string]Value

func (m MapResolver) Resolve(name string) (Value, bool) {
	v, ok := m[name]
	return v, ok
}

// DecodeValues reads a YAML mapping and flattens it into a [MapResolver].
// Nested keys are joined with dots and sequence elements are addressed by
// index, so
//
//	user:
//	  name: FooUser
//	  tags: [a, b]
//
// yields "user.name", "user.tags.0" and "user.tags.1". Integers become
// [Int], floats [Float], strings [Text]; any other scalar is [Displayable].
// An empty mapping or sequence is kept under its own key as a [Displayable],
// so "tags: []" renders as "[]" through %v. An empty document yields an empty
// resolver.
func DecodeValues(r io.Reader) (MapResolver, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode values: %w", err)
	}
	out := MapResolver{}
	for k, v := range doc {
		if err := flatten(out, k, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func flatten(out MapResolver, key string, v any) error {
	switch x := v.(type) {
	case map[string]any:
		if len(x) == 0 {
			out[key] = Display(x)
		}
		for k, child := range x {
			if err := flatten(out, key+"."+k, child); err != nil {
				return err
			}
		}
	case map[any]any:
		if len(x) == 0 {
			out[key] = Display(x)
		}
		for k, child := range x {
			if err := flatten(out, key+"."+fmt.Sprint(k), child); err != nil {
				return err
			}
		}
	case []any:
		if len(x) == 0 {
			out[key] = Display(x)
		}
		for i, child := range x {
			if err := flatten(out, key+"."+strconv.Itoa(i), child); err != nil {
				return err
			}
		}
	default:
		val, err := ValueOf(v)
		if err != nil {
			return fmt.Errorf("value %q: %w", key, err)
		}
		out[key] = val
	}
	return nil
}
