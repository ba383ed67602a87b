// Package format decides how rendered records are framed in the output:
// plain newline-joined records, CSV with a literal header row, or a JSON
// array.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrInvalidCSVTemplate = errors.New("invalid csv template")
)

// Format represents an output container format.
type Format string

const (
	Plain Format = "plain"
	CSV   Format = "csv"
	JSON  Format = "json"
)

var formats = []Format{Plain, CSV, JSON}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string, typically a CLI flag value. The empty
// string and "default" select Plain.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimSpace(s) {
	case "", "default":
		return Plain, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Plan describes the framing for one run: the header and footer written once,
// the separator written between consecutive records, and the per-record
// template text.
type Plan struct {
	Header         string
	Footer         string
	Separator      string
	RecordTemplate string
}

// Adapt splits the raw template according to the selected format.
//
// CSV reinterprets the template's first line as a literal header row, written
// verbatim and never templated, and the second line as the record template.
// The template must split into exactly two lines; no trimming of trailing
// blank lines. The header is always written, even when empty.
func Adapt(raw string, f Format) (Plan, error) {
	switch f {
	case Plain:
		return Plan{Separator: "\n", RecordTemplate: raw}, nil
	case CSV:
		lines := strings.Split(raw, "\n")
		if len(lines) != 2 {
			return Plan{}, fmt.Errorf("%w: want a header line and a record line, got %d line(s)", ErrInvalidCSVTemplate, len(lines))
		}
		return Plan{
			Header:         lines[0] + "\n",
			Separator:      "\n",
			RecordTemplate: lines[1],
		}, nil
	case JSON:
		return Plan{
			Header:         "[",
			Footer:         "]",
			Separator:      ",\n",
			RecordTemplate: raw,
		}, nil
	default:
		return Plan{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
