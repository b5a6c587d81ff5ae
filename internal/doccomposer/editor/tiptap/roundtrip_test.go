package tiptap

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

func TestRoundTrip(t *testing.T) {
	doc := edtypes.NewDocument(
		edtypes.NewText("Title", edtypes.WithBold(), edtypes.WithUnderline()),
		edtypes.NewText("first\n\nsecond", edtypes.WithMaxWidth(40)),
		edtypes.NewText("", edtypes.WithItalic()),
		edtypes.NewText("flat", edtypes.WithPreserveNewLines(false), edtypes.WithoutWrap()),
		edtypes.NewImage("img/diagram.png"),
		edtypes.NewLine{},
		edtypes.Tab{},
	)

	data, err := Serialize(doc)
	require.NoError(t, err)

	parsed, err := ParseJSON(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, doc.Elements(), parsed.Elements())
}

func TestSerializeShape(t *testing.T) {
	doc := edtypes.NewDocument(edtypes.NewText("hi", edtypes.WithBold()), edtypes.NewImage("a.png"))

	data, err := Serialize(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"doc","content":[
		{"type":"paragraph","content":[{"type":"text","text":"hi","marks":[{"type":"bold"}]}]},
		{"type":"image","attrs":{"src":"a.png"}}
	]}`, string(data))
}

func TestDocumentJSONHooks(t *testing.T) {
	doc := edtypes.NewDocument(edtypes.NewText("x"), edtypes.Tab{})

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var back edtypes.Document
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, doc.Elements(), back.Elements())

	v, err := doc.Value()
	require.NoError(t, err)

	var scanned edtypes.Document
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, 2, scanned.Len())
}
