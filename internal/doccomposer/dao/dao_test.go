package dao

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestRenderedDocumentCreateGet(t *testing.T) {
	db := openTestDB(t)

	src := edtypes.NewDocument(edtypes.NewText("hi", edtypes.WithBold()), edtypes.NewImage("a.png"))
	doc := RenderedDocument{Renderer: "plain", Content: "**hi**\n[IMAGE: a.png]", Source: *src}
	require.NoError(t, CreateRenderedDocument(db, &doc))
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, len(doc.Content), doc.Size)

	got, err := GetRenderedDocument(db, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, "plain", got.Renderer)
	assert.Equal(t, src.Elements(), got.Source.Elements())

	_, err = GetRenderedDocument(db, GenUUID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListRenderedDocuments(t *testing.T) {
	db := openTestDB(t)
	for _, content := range []string{"a", "bb", "ccc"} {
		require.NoError(t, CreateRenderedDocument(db, &RenderedDocument{Renderer: "plain", Content: content}))
	}

	docs, err := ListRenderedDocuments(db, 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	for _, d := range docs {
		assert.Empty(t, d.Content)
		assert.NotZero(t, d.Size)
	}
}
