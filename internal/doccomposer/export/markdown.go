package export

import (
	md "github.com/nao1215/markdown"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

// MarkdownRenderer отрисовывает документ в Markdown.
// Подчеркивания в Markdown нет, поэтому используется тег <u>.
type MarkdownRenderer struct {
	edtypes.BaseRenderer
}

func NewMarkdownRenderer() MarkdownRenderer {
	return MarkdownRenderer{}
}

func (MarkdownRenderer) RenderText(el edtypes.Text) (string, error) {
	text := prepareText(el)
	if text == "" {
		return text, nil
	}

	if el.Options.Bold {
		text = md.Bold(text)
	}
	if el.Options.Italic {
		text = md.Italic(text)
	}
	if el.Options.Underline {
		text = "<u>" + text + "</u>"
	}
	return text, nil
}

func (MarkdownRenderer) RenderImage(el edtypes.Image) (string, error) {
	return md.Image(el.Path, el.Path), nil
}
