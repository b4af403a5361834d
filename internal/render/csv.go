package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// CSVHeader is the header row written before any data row.
var CSVHeader = []string{"package", "bucket", "description", "homepage"}

// CSVWriter writes resolved manifests as CSV rows. Quoting follows
// RFC 4180: fields containing commas, quotes or newlines are quoted and
// embedded quotes are doubled.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a CSVWriter on w and writes the header row, so the
// header is present even when no row follows.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{w: csv.NewWriter(w)}
	if err := cw.w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return cw, nil
}

// Resolved writes one row: package name, bucket, description, homepage.
func (c *CSVWriter) Resolved(_ string, m *model.Manifest) error {
	if err := c.w.Write([]string{m.Name, m.Bucket, m.Description, m.Homepage}); err != nil {
		return fmt.Errorf("failed to write CSV row for %s: %w", m.Reference(), err)
	}
	return nil
}

// Skipped writes nothing; unresolved lines have no CSV representation.
func (c *CSVWriter) Skipped(string) error {
	return nil
}

// Flush flushes buffered rows and reports any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV output: %w", err)
	}
	return nil
}
