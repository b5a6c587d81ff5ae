package export

import (
	"fmt"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

// PlainTextRenderer отрисовывает документ в простой текст с маркерами стилей.
type PlainTextRenderer struct {
	edtypes.BaseRenderer
}

func NewPlainTextRenderer() PlainTextRenderer {
	return PlainTextRenderer{}
}

// RenderText нормализует переносы, переносит текст по ширине и применяет стили.
// Стили применяются по очереди: жирный, курсив, подчеркивание. Каждый оборачивает текущий результат,
// поэтому жирный оказывается внутри, а подчеркивание снаружи: "___**hi**___".
func (PlainTextRenderer) RenderText(el edtypes.Text) (string, error) {
	text := prepareText(el)

	if el.Options.Bold {
		text = "**" + text + "**"
	}
	if el.Options.Italic {
		text = "_" + text + "_"
	}
	if el.Options.Underline {
		text = "__" + text + "__"
	}
	return text, nil
}

func (PlainTextRenderer) RenderImage(el edtypes.Image) (string, error) {
	return fmt.Sprintf("[IMAGE: %s]", el.Path), nil
}

// prepareText выполняет общие для всех текстовых форматов шаги: нормализацию и перенос.
func prepareText(el edtypes.Text) string {
	text := normalizeNewLines(el.Content, el.Options.PreserveNewLines)
	return Wrap(text, el.Options.MaxWidth)
}
