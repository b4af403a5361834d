package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// failingWriter is an io.Writer that always fails, used to verify that
// write errors are propagated.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		hasError bool
	}{
		{"csv", FormatCSV, false},
		{"annotate", FormatAnnotate, false},
		{"CSV", FormatCSV, false},
		{" annotate ", FormatAnnotate, false},
		{"markdown", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(FormatCSV, &buf)
	require.NoError(t, err)
	assert.IsType(t, &CSVWriter{}, w)

	w, err = NewWriter(FormatAnnotate, &buf)
	require.NoError(t, err)
	assert.IsType(t, &Annotator{}, w)

	_, err = NewWriter(Format("xml"), &buf)
	assert.Error(t, err)
}

// --- Markdown ---

func TestMarkdownLine(t *testing.T) {
	m := &model.Manifest{Name: "foo", Bucket: "main", Description: "D", Homepage: "H"}
	assert.Equal(t, "* [foo](H) - D\n", MarkdownLine(m))
}

func TestMarkdown(t *testing.T) {
	manifests := []*model.Manifest{
		{Name: "7zip", Description: "A multi-format file archiver", Homepage: "https://www.7-zip.org/"},
		{Name: "git", Description: "Distributed version control", Homepage: "https://git-scm.com"},
	}

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, manifests))
	assert.Equal(t,
		"* [7zip](https://www.7-zip.org/) - A multi-format file archiver\n"+
			"* [git](https://git-scm.com) - Distributed version control\n",
		buf.String())
}

func TestMarkdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestMarkdown_WriteError(t *testing.T) {
	err := Markdown(failingWriter{}, []*model.Manifest{{Name: "foo"}})
	assert.ErrorContains(t, err, "disk full")
}

// --- CSV ---

func TestCSVWriter_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	assert.Equal(t, "package,bucket,description,homepage\n", buf.String())
}

func TestCSVWriter_Rows(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Resolved("scoop install git", &model.Manifest{
		Name: "git", Bucket: "main", Description: "Distributed version control", Homepage: "https://git-scm.com",
	}))
	require.NoError(t, w.Skipped("echo hello"))
	require.NoError(t, w.Resolved("scoop install extras/foo", &model.Manifest{
		Name: "foo", Bucket: "extras", Description: `Fast, "small" tool`, Homepage: "https://foo.example",
	}))
	require.NoError(t, w.Flush())

	assert.Equal(t,
		"package,bucket,description,homepage\n"+
			"git,main,Distributed version control,https://git-scm.com\n"+
			"foo,extras,\"Fast, \"\"small\"\" tool\",https://foo.example\n",
		buf.String())
}

func TestCSVWriter_MultilineField(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Resolved("", &model.Manifest{Name: "x", Bucket: "main", Description: "line1\nline2", Homepage: "H"}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "package,bucket,description,homepage\nx,main,\"line1\nline2\",H\n", buf.String())
}

func TestCSVWriter_WriteError(t *testing.T) {
	w, err := NewCSVWriter(failingWriter{})
	require.NoError(t, err, "header is buffered until Flush")
	assert.ErrorContains(t, w.Flush(), "disk full")
}

// --- Annotate ---

func TestAnnotator(t *testing.T) {
	git := &model.Manifest{Name: "git", Bucket: "main", Description: "Distributed version control", Homepage: "H"}

	tests := []struct {
		name     string
		resolved bool
		line     string
		want     string
	}{
		{
			name:     "resolved line gets comment",
			resolved: true,
			line:     "scoop install git\n",
			want:     "# Distributed version control\nscoop install git\n",
		},
		{
			name:     "indentation is kept",
			resolved: true,
			line:     "  \tscoop install git\n",
			want:     "  \t# Distributed version control\n  \tscoop install git\n",
		},
		{
			name:     "crlf is kept",
			resolved: true,
			line:     "scoop install git\r\n",
			want:     "# Distributed version control\r\nscoop install git\r\n",
		},
		{
			name:     "last line without newline",
			resolved: true,
			line:     "scoop install git",
			want:     "# Distributed version control\nscoop install git",
		},
		{
			name: "skipped line echoed verbatim",
			line: "echo hello\n",
			want: "echo hello\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			a := NewAnnotator(&buf)
			if tt.resolved {
				require.NoError(t, a.Resolved(tt.line, git))
			} else {
				require.NoError(t, a.Skipped(tt.line))
			}
			require.NoError(t, a.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestAnnotator_WriteError(t *testing.T) {
	a := NewAnnotator(failingWriter{})
	assert.ErrorContains(t, a.Resolved("scoop install git\n", &model.Manifest{Name: "git"}), "disk full")
	assert.ErrorContains(t, a.Skipped("x\n"), "disk full")
}
