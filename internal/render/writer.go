package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// Format selects the output format of the line-driven renderers.
type Format string

const (
	// FormatCSV writes one CSV row per resolved install line.
	FormatCSV Format = "csv"

	// FormatAnnotate echoes the input with description comments inserted.
	FormatAnnotate Format = "annotate"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format value is one of the predefined formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatAnnotate:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format.
// Returns an error if the string does not match any valid format.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: csv, annotate)", s)
	}
	return format, nil
}

// Writer receives the input lines of one run in order. Every line is
// reported exactly once, either as Resolved or as Skipped.
type Writer interface {
	// Resolved is called for an install line whose manifest was loaded.
	Resolved(line string, m *model.Manifest) error

	// Skipped is called for every other line: non-matching lines,
	// malformed references and unresolvable references.
	Skipped(line string) error

	// Flush writes any buffered output. It must be called once after the
	// last line.
	Flush() error
}

// NewWriter creates the Writer for format on w.
func NewWriter(format Format, w io.Writer) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSVWriter(w)
	case FormatAnnotate:
		return NewAnnotator(w), nil
	default:
		return nil, fmt.Errorf("invalid output format: %q (valid: csv, annotate)", format)
	}
}
