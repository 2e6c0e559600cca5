// Package fields holds the JSON field types needed to read the BART API's
// XML-as-JSON projection, where numbers and booleans arrive as strings, free
// text is wrapped in CDATA objects and single-element lists collapse into a
// bare object.
package fields

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrDecode = errors.New("failed to decode field")

// scalar returns the text of a JSON string or number.
func scalar(data []byte) (string, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) || data[0] == '{' || data[0] == '[' {
		return "", fmt.Errorf("%w: expected string or number, got %q", ErrDecode, data)
	}

	return string(data), nil
}

// Blank reports whether data is null or an empty string, which is how the
// API encodes a missing element.
func Blank(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`))
}

// Int is an integer the API encodes as a string, e.g. "6".
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	s, err := scalar(data)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrDecode, s)
	}

	*i = Int(n)
	return nil
}

// Float is a decimal number the API encodes as a string, e.g. "37.803768".
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	s, err := scalar(data)
	if err != nil {
		return err
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrDecode, s)
	}

	*f = Float(n)
	return nil
}

// Flag is a boolean encoded as a number string where anything but "0" is true.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false")) {
		*f = Flag(trimmed[0] == 't')
		return nil
	}

	s, err := scalar(data)
	if err != nil {
		return err
	}

	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return fmt.Errorf("%w: %q is not a numeric flag", ErrDecode, s)
	}

	*f = n != 0
	return nil
}

// CDATA is free text the API wraps as {"#cdata-section": "..."}.
type CDATA string

type cdataSection struct {
	Inner string `json:"#cdata-section"`
}

func (c *CDATA) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CDATA(s)
		return nil
	}

	var section cdataSection
	if err := json.Unmarshal(data, &section); err != nil {
		return fmt.Errorf("%w: expected CDATA section: %s", ErrDecode, err)
	}

	*c = CDATA(section.Inner)
	return nil
}

func (c CDATA) String() string {
	return string(c)
}

// List is a repeated element. The JSON projection emits an object instead of
// an array when the element occurs once, and "" when it is empty.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if Blank(data) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*l = List[T]{item}

	return nil
}

// Optional holds a value that is dropped rather than failing the whole
// response when it is missing or malformed.
type Optional[T any] struct {
	Value T
	Valid bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Valid: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		*o = Optional[T]{}
		return nil
	}

	*o = Optional[T]{Value: value, Valid: true}
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}
