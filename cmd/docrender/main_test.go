package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor"
	"github.com/aisa-it/doccomposer/internal/doccomposer/export"
)

func TestParseDocument(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		src  string
		want string
	}{
		{"json", ".json", `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hello world"}]}]}`, "hello world"},
		{"html", ".HTML", `<p>hello world</p>`, "hello\nworld"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := parseDocument(strings.NewReader(tc.src), tc.ext, 5)
			require.NoError(t, err)

			out, err := doc.Render(export.NewPlainTextRenderer())
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	_, err := parseDocument(strings.NewReader(""), ".txt", 5)
	assert.Error(t, err)
}

func TestWriteMarkdownFile(t *testing.T) {
	doc := editor.NewDocument(editor.NewText("body text", editor.WithoutWrap()))
	path := filepath.Join(t.TempDir(), "out.md")

	require.NoError(t, writeMarkdownFile(path, "Title", doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Title")
	assert.Contains(t, string(data), "body text")

	err = writeMarkdownFile(filepath.Join(t.TempDir(), "missing", "out.md"), "Title", doc)
	assert.Error(t, err)
}
