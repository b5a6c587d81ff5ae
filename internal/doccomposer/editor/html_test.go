package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	src := `<h1>Title</h1>
<p>Hello <strong>bold</strong></p>
<p><strong>All <em>bold</em></strong></p>
<p>line1<br>line2</p>
<ul><li><p>item</p></li></ul>
<pre>code  x
 y</pre>
<img src="diagram.png">
<hr>
<script>alert(1)</script>`

	doc, err := ParseDocument(strings.NewReader(src))
	require.NoError(t, err)

	els := doc.Elements()
	require.Len(t, els, 8)

	title := els[0].(Text)
	assert.Equal(t, "Title", title.Content)
	assert.True(t, title.Options.Bold)

	mixed := els[1].(Text)
	assert.Equal(t, "Hello bold", mixed.Content)
	assert.False(t, mixed.Options.Bold)

	allBold := els[2].(Text)
	assert.Equal(t, "All bold", allBold.Content)
	assert.True(t, allBold.Options.Bold)
	assert.False(t, allBold.Options.Italic)

	assert.Equal(t, "line1\nline2", els[3].(Text).Content)
	assert.Equal(t, "item", els[4].(Text).Content)

	code := els[5].(Text)
	assert.Equal(t, "code  x\n y", code.Content)
	assert.Equal(t, 0, code.Options.MaxWidth)

	assert.Equal(t, NewImage("diagram.png"), els[6])
	assert.Equal(t, NewLine{}, els[7])
}

func TestParseDocumentInlineImage(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`<p><u>before</u><img src="a.png"><u>after</u></p>`))
	require.NoError(t, err)

	els := doc.Elements()
	require.Len(t, els, 3)
	assert.Equal(t, NewText("before", WithUnderline()), els[0])
	assert.Equal(t, NewImage("a.png"), els[1])
	assert.Equal(t, NewText("after", WithUnderline()), els[2])
}

func TestParseDocumentEmpty(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())

	doc, err = ParseDocument(strings.NewReader("<p>   </p>"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestParseDocumentBaseOptions(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`<p>text</p><pre>code</pre>`), WithMaxWidth(20), WithItalic())
	require.NoError(t, err)

	els := doc.Elements()
	require.Len(t, els, 2)
	assert.Equal(t, NewText("text", WithMaxWidth(20), WithItalic()), els[0])
	assert.Equal(t, NewText("code", WithItalic(), WithoutWrap()), els[1])
}
