// Package output renders API responses for the command line.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatBrief  = "brief"
	FormatCSV    = "csv"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNotTabular    = errors.New("value can't be written as CSV")
)

// Tabular is implemented by responses that can be flattened into CSV rows.
// Rows must return a slice of structs.
type Tabular interface {
	Rows() (any, error)
}

// Encoder writes value in a format the package doesn't know about itself.
type Encoder func(w io.Writer, value any) error

var (
	encodersMu sync.RWMutex
	encoders   = map[string]Encoder{}
)

// RegisterFormat makes an extra format available to Write.
func RegisterFormat(format string, encoder Encoder) {
	encodersMu.Lock()
	defer encodersMu.Unlock()

	encoders[format] = encoder
}

func registered(format string) (Encoder, bool) {
	encodersMu.RLock()
	defer encodersMu.RUnlock()

	encoder, ok := encoders[format]
	return encoder, ok
}

func Formats() []string {
	formats := []string{FormatPretty, FormatJSON, FormatBrief, FormatCSV}

	encodersMu.RLock()
	defer encodersMu.RUnlock()

	var extra []string
	for format := range encoders {
		extra = append(extra, format)
	}
	slices.Sort(extra)

	return append(formats, extra...)
}

func Write(w io.Writer, format string, value any) error {
	switch format {
	case FormatPretty, "":
		_, err := pretty.Fprintf(w, "%# v\n", value)
		return err
	case FormatJSON:
		return writeJSON(w, value)
	case FormatBrief:
		reduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic"},
		}, value)
		if err != nil {
			return fmt.Errorf("failed to reduce output: %w", err)
		}
		return writeJSON(w, reduced)
	case FormatCSV:
		return writeCSV(w, value)
	default:
		if encoder, ok := registered(format); ok {
			return encoder(w, value)
		}
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Print writes value to the app's writer in the format chosen with --format.
func Print(c *cli.Context, value any) error {
	return Write(c.App.Writer, c.String("format"), value)
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

func writeCSV(w io.Writer, value any) error {
	if tabular, ok := value.(Tabular); ok {
		rows, err := tabular.Rows()
		if err != nil {
			return err
		}
		value = rows
	}

	kind := reflect.Indirect(reflect.ValueOf(value)).Kind()
	if kind != reflect.Slice && kind != reflect.Array {
		return fmt.Errorf("%w: %T", ErrNotTabular, value)
	}

	return gocsv.Marshal(value, w)
}
