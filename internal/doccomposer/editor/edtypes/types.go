package edtypes

// ElementKind - тип элемента документа. Набор закрыт: других видов элементов нет.
type ElementKind int

const (
	KindText ElementKind = iota
	KindImage
	KindNewLine
	KindTab
)

func (k ElementKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindNewLine:
		return "newline"
	case KindTab:
		return "tab"
	}
	return "unknown"
}

// Element - элемент содержимого документа.
// Accept вызывает ровно тот метод рендерера, который соответствует виду элемента.
type Element interface {
	Kind() ElementKind
	Accept(r Renderer) (string, error)

	element()
}

// Text - фрагмент текста с опциями форматирования.
type Text struct {
	Content string
	Options TextOptions
}

// NewText создает текстовый элемент. Сначала применяются значения по умолчанию,
// затем опции в порядке передачи.
func NewText(content string, opts ...TextOption) Text {
	o := DefaultTextOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return Text{Content: content, Options: o}
}

func (Text) Kind() ElementKind { return KindText }

func (t Text) Accept(r Renderer) (string, error) { return r.RenderText(t) }

func (Text) element() {}

// Image - ссылка на изображение. Путь не проверяется и не загружается.
type Image struct {
	Path string
}

func NewImage(path string) Image {
	return Image{Path: path}
}

func (Image) Kind() ElementKind { return KindImage }

func (i Image) Accept(r Renderer) (string, error) { return r.RenderImage(i) }

func (Image) element() {}

// NewLine - явный перенос строки.
type NewLine struct{}

func (NewLine) Kind() ElementKind { return KindNewLine }

func (n NewLine) Accept(r Renderer) (string, error) { return r.RenderNewLine(n) }

func (NewLine) element() {}

// Tab - символ табуляции.
type Tab struct{}

func (Tab) Kind() ElementKind { return KindTab }

func (t Tab) Accept(r Renderer) (string, error) { return r.RenderTab(t) }

func (Tab) element() {}
