// Package report renders rows of inspection data as a table, Markdown, CSV,
// TSV, JSON or YAML.
//
// Items opt into the row formats by implementing [Rower]; [Headed] and
// [Aligned] refine them. JSON and YAML work on any value.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Table, Markdown, CSV, TSV, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides row data. Required for Table, Markdown, CSV and TSV.
type Rower interface {
	Row() []string
}

// Headed provides column headers. Required for Markdown.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Option configures [Write].
type Option func(*options)

type options struct {
	border BorderStyle
}

// WithBorder sets the table border style. Default: BorderRounded.
func WithBorder(b BorderStyle) Option {
	return func(o *options) { o.border = b }
}

// Write renders items to w in format f.
func Write[T any](w io.Writer, f Format, items []T, opts ...Option) error {
	o := options{border: BorderRounded}
	for _, opt := range opts {
		opt(&o)
	}
	switch f {
	case Table:
		return writeTable(w, items, o.border)
	case Markdown:
		return writeMarkdown(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	case JSON:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writeJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if items == nil {
		items = []T{}
	}
	return enc.Encode(items)
}

func writeYAML[T any](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if items == nil {
		items = []T{}
	}
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}
