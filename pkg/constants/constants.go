// Package constants holds the code tables the BART API uses for stations,
// line colours, directions and fare types.
package constants

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrUnknownCode = errors.New("unknown code")

// entry pairs a value with its short API code and its display name.
type entry[T comparable] struct {
	value T
	code  string
	name  string
}

type table[T comparable] struct {
	kind    string
	entries []entry[T]
}

func (t table[T]) fromCode(code string) (T, error) {
	index := slices.IndexFunc(t.entries, func(e entry[T]) bool {
		return e.code == code
	})

	return t.at(index, code)
}

func (t table[T]) fromName(name string) (T, error) {
	index := slices.IndexFunc(t.entries, func(e entry[T]) bool {
		return e.name == name
	})

	return t.at(index, name)
}

// parse tries the code first and falls back to the display name.
func (t table[T]) parse(s string) (T, error) {
	if value, err := t.fromCode(s); err == nil {
		return value, nil
	}

	return t.fromName(s)
}

func (t table[T]) at(index int, s string) (T, error) {
	if index < 0 {
		var zero T
		return zero, fmt.Errorf("%w: %q does not match any %s", ErrUnknownCode, s, t.kind)
	}

	return t.entries[index].value, nil
}

func (t table[T]) lookup(value T) (entry[T], bool) {
	index := slices.IndexFunc(t.entries, func(e entry[T]) bool {
		return e.value == value
	})
	if index < 0 {
		return entry[T]{}, false
	}

	return t.entries[index], true
}

func (t table[T]) code(value T) string {
	e, _ := t.lookup(value)
	return e.code
}

func (t table[T]) name(value T) string {
	e, _ := t.lookup(value)
	return e.name
}

func (t table[T]) values() []T {
	values := make([]T, 0, len(t.entries))
	for _, e := range t.entries {
		values = append(values, e.value)
	}

	return values
}
