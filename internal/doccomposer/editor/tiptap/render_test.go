package tiptap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/tiptap"
	"github.com/aisa-it/doccomposer/internal/doccomposer/export"
)

func TestParseJSONTabsRenderPlain(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"tabs around text",
			`[{"type":"tab"},{"type":"text","text":"Indented"},{"type":"tab"}]`,
			"\tIndented\t",
		},
		{
			"tab after hard break",
			`[{"type":"text","text":"first"},{"type":"hardBreak"},{"type":"tab"},{"type":"text","text":"second"}]`,
			"first\n\tsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := `{"type":"doc","content":[{"type":"paragraph","content":` + tt.content + `}]}`
			doc, err := tiptap.ParseJSON(strings.NewReader(src))
			require.NoError(t, err)

			out, err := doc.Render(export.PlainTextRenderer{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
