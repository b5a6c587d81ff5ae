package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRenderer считает вызовы RenderText.
type countingRenderer struct {
	BaseRenderer
	calls int
}

func (r *countingRenderer) RenderText(t Text) (string, error) {
	r.calls++
	return t.Content, nil
}

type memoryStorage struct {
	saved []string
	err   error
}

func (s *memoryStorage) Save(content string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, content)
	return nil
}

func TestEditorFluent(t *testing.T) {
	e := NewEditor(nil, &countingRenderer{}, nil)
	same := e.AddText("a").AddImage("b").AddNewLine().AddTab()
	assert.Same(t, e, same)
	assert.Equal(t, 4, e.Document().Len())

	kinds := []ElementKind{}
	for _, el := range e.Document().Elements() {
		kinds = append(kinds, el.Kind())
	}
	assert.Equal(t, []ElementKind{KindText, KindImage, KindNewLine, KindTab}, kinds)
}

func TestEditorRenderCache(t *testing.T) {
	r := &countingRenderer{}
	e := NewEditor(NewDocument(), r, nil)
	e.AddText("A").AddText("B")

	out, err := e.Render()
	require.NoError(t, err)
	assert.Equal(t, "A\nB", out)
	assert.Equal(t, 2, r.calls)

	out, err = e.Render()
	require.NoError(t, err)
	assert.Equal(t, "A\nB", out)
	assert.Equal(t, 2, r.calls, "cached render must not call renderer")

	e.AddText("C")
	out, err = e.Render()
	require.NoError(t, err)
	assert.Equal(t, "A\nB\nC", out)
	assert.Equal(t, 5, r.calls)
}

func TestEditorRenderEmptyCached(t *testing.T) {
	r := &countingRenderer{}
	e := NewEditor(nil, r, nil)

	out, err := e.Render()
	require.NoError(t, err)
	assert.Equal(t, "", out)

	e.AddText("")
	out, err = e.Render()
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, 1, r.calls)

	_, err = e.Render()
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
}

func TestEditorRenderDirectDocumentChange(t *testing.T) {
	r := &countingRenderer{}
	e := NewEditor(nil, r, nil)
	e.AddText("A")
	_, err := e.Render()
	require.NoError(t, err)

	e.Document().Add(NewText("B"))
	out, err := e.Render()
	require.NoError(t, err)
	assert.Equal(t, "A\nB", out)
}

func TestEditorRenderErrorNotCached(t *testing.T) {
	r := &countingRenderer{}
	e := NewEditor(nil, r, nil)
	e.AddText("A").AddImage("x.png")

	_, err := e.Render()
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = e.Render()
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Equal(t, 2, r.calls)
}

func TestEditorSave(t *testing.T) {
	r := &countingRenderer{}
	s := &memoryStorage{}
	e := NewEditor(nil, r, s)
	e.AddText("hello").AddTab()

	out, err := e.Render()
	require.NoError(t, err)
	require.NoError(t, e.Save())
	assert.Equal(t, []string{out}, s.saved)
	assert.Equal(t, 1, r.calls)
}

func TestEditorSaveErrors(t *testing.T) {
	storageErr := errors.New("disk full")
	e := NewEditor(nil, &countingRenderer{}, &memoryStorage{err: storageErr})
	e.AddText("x")
	assert.Same(t, storageErr, e.Save())

	s := &memoryStorage{}
	e = NewEditor(nil, &countingRenderer{}, s)
	e.AddImage("x.png")
	assert.ErrorIs(t, e.Save(), ErrNotImplemented)
	assert.Empty(t, s.saved)

	e = NewEditor(nil, &countingRenderer{}, nil)
	assert.ErrorIs(t, e.Save(), ErrStorageRequired)
}
