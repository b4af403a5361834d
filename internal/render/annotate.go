package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// Annotator echoes every input line unchanged and inserts a comment with
// the package description above each resolved install line:
//
//	  # Distributed version control system
//	  scoop install git
//
// The comment reuses the line's indentation and line terminator.
type Annotator struct {
	w io.Writer
}

// NewAnnotator creates an Annotator writing to w.
func NewAnnotator(w io.Writer) *Annotator {
	return &Annotator{w: w}
}

// Resolved writes the description comment followed by the line itself.
func (a *Annotator) Resolved(line string, m *model.Manifest) error {
	prefix := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

	newline := "\n"
	if strings.HasSuffix(line, "\r\n") {
		newline = "\r\n"
	}

	if _, err := fmt.Fprintf(a.w, "%s# %s%s", prefix, m.Description, newline); err != nil {
		return fmt.Errorf("failed to write annotation for %s: %w", m.Reference(), err)
	}
	return a.Skipped(line)
}

// Skipped writes the line unchanged.
func (a *Annotator) Skipped(line string) error {
	if _, err := io.WriteString(a.w, line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// Flush is a no-op; Annotator does not buffer.
func (a *Annotator) Flush() error {
	return nil
}
