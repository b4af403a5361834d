package render

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// MarkdownLine formats one manifest as a markdown bullet, including the
// trailing newline:
//
//	* [git](https://git-scm.com) - Distributed version control system
func MarkdownLine(m *model.Manifest) string {
	return fmt.Sprintf("* [%s](%s) - %s\n", m.Name, m.Homepage, m.Description)
}

// Markdown writes one bullet per manifest, in the given order. Nothing is
// written for an empty slice.
func Markdown(w io.Writer, manifests []*model.Manifest) error {
	for _, m := range manifests {
		if _, err := io.WriteString(w, MarkdownLine(m)); err != nil {
			return fmt.Errorf("failed to write markdown for %s: %w", m.Reference(), err)
		}
	}
	return nil
}
