package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

const DefaultRenderer = "plain"

var ErrUnknownRenderer = errors.New("unknown renderer")

// Renderers - доступные рендереры по имени.
var Renderers = map[string]edtypes.Renderer{
	"plain":    PlainTextRenderer{},
	"markdown": MarkdownRenderer{},
}

// NewRenderer возвращает рендерер по имени. Пустое имя означает рендерер по умолчанию.
func NewRenderer(name string) (edtypes.Renderer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultRenderer
	}
	r, ok := Renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	return r, nil
}

func RendererNames() []string {
	names := make([]string, 0, len(Renderers))
	for name := range Renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteMarkdown записывает документ в Markdown файл. Если title не пустой, добавляется заголовок.
func WriteMarkdown(doc *edtypes.Document, title string, w io.Writer) error {
	body, err := doc.Render(MarkdownRenderer{})
	if err != nil {
		return err
	}

	m := md.NewMarkdown(w)
	if title != "" {
		m.H1(title)
	}
	return m.PlainText(body).Build()
}
