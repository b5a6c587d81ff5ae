package edtypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kindRecorder записывает вызванные методы рендерера.
type kindRecorder struct {
	calls []ElementKind
}

func (r *kindRecorder) RenderText(t Text) (string, error) {
	r.calls = append(r.calls, KindText)
	return "T:" + t.Content, nil
}

func (r *kindRecorder) RenderImage(i Image) (string, error) {
	r.calls = append(r.calls, KindImage)
	return "I:" + i.Path, nil
}

func (r *kindRecorder) RenderNewLine(NewLine) (string, error) {
	r.calls = append(r.calls, KindNewLine)
	return "NL", nil
}

func (r *kindRecorder) RenderTab(Tab) (string, error) {
	r.calls = append(r.calls, KindTab)
	return "TAB", nil
}

type textOnly struct {
	BaseRenderer
}

func (textOnly) RenderText(t Text) (string, error) {
	return t.Content, nil
}

func TestNewTextDefaults(t *testing.T) {
	txt := NewText("hello")
	assert.Equal(t, "hello", txt.Content)
	assert.Equal(t, TextOptions{MaxWidth: 80, PreserveNewLines: true}, txt.Options)
}

func TestNewTextOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []TextOption
		want TextOptions
	}{
		{
			name: "bold",
			opts: []TextOption{WithBold()},
			want: TextOptions{Bold: true, MaxWidth: 80, PreserveNewLines: true},
		},
		{
			name: "all styles",
			opts: []TextOption{WithBold(), WithItalic(), WithUnderline()},
			want: TextOptions{Bold: true, Italic: true, Underline: true, MaxWidth: 80, PreserveNewLines: true},
		},
		{
			name: "later option wins",
			opts: []TextOption{WithMaxWidth(10), WithoutWrap()},
			want: TextOptions{MaxWidth: 0, PreserveNewLines: true},
		},
		{
			name: "collapse newlines",
			opts: []TextOption{WithPreserveNewLines(false)},
			want: TextOptions{MaxWidth: 80},
		},
		{
			name: "nil option ignored",
			opts: []TextOption{nil, WithItalic()},
			want: TextOptions{Italic: true, MaxWidth: 80, PreserveNewLines: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewText("x", tt.opts...).Options)
		})
	}
}

func TestPatchMerge(t *testing.T) {
	bold := true
	width := 5
	p := TextOptionsPatch{Bold: &bold, MaxWidth: &width}

	got := p.Merge(DefaultTextOptions())
	assert.Equal(t, TextOptions{Bold: true, MaxWidth: 5, PreserveNewLines: true}, got)

	empty := TextOptionsPatch{}
	assert.Equal(t, DefaultTextOptions(), empty.Merge(DefaultTextOptions()))

	txt := NewText("x", WithItalic(), WithPatch(p))
	assert.True(t, txt.Options.Italic)
	assert.True(t, txt.Options.Bold)
	assert.Equal(t, 5, txt.Options.MaxWidth)
}

func TestAcceptDispatch(t *testing.T) {
	elements := []Element{NewText("a"), NewImage("p.png"), NewLine{}, Tab{}}
	want := []ElementKind{KindText, KindImage, KindNewLine, KindTab}

	for i, el := range elements {
		r := &kindRecorder{}
		_, err := el.Accept(r)
		require.NoError(t, err)
		assert.Equal(t, []ElementKind{want[i]}, r.calls)
		assert.Equal(t, want[i], el.Kind())
	}
}

func TestBaseRenderer(t *testing.T) {
	var r Renderer = BaseRenderer{}

	s, err := NewLine{}.Accept(r)
	require.NoError(t, err)
	assert.Equal(t, "\n", s)

	s, err = Tab{}.Accept(r)
	require.NoError(t, err)
	assert.Equal(t, "\t", s)

	_, err = NewText("x").Accept(r)
	assert.ErrorIs(t, err, ErrNotImplemented)
	var nie *NotImplementedError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, KindText, nie.Kind)

	_, err = NewImage("x").Accept(r)
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, KindImage, nie.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "image", KindImage.String())
	assert.Equal(t, "newline", KindNewLine.String())
	assert.Equal(t, "tab", KindTab.String())
	assert.Equal(t, "unknown", ElementKind(42).String())
}
