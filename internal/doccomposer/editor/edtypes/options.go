package edtypes

const DefaultMaxWidth = 80

// TextOptions - опции форматирования текстового элемента.
type TextOptions struct {
	Bold             bool
	Italic           bool
	Underline        bool
	MaxWidth         int
	PreserveNewLines bool
}

// DefaultTextOptions возвращает опции по умолчанию: без стилей, ширина 80, переносы строк сохраняются.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		MaxWidth:         DefaultMaxWidth,
		PreserveNewLines: true,
	}
}

// TextOption изменяет опции текста при создании элемента.
type TextOption func(*TextOptions)

func WithBold() TextOption {
	return func(o *TextOptions) { o.Bold = true }
}

func WithItalic() TextOption {
	return func(o *TextOptions) { o.Italic = true }
}

func WithUnderline() TextOption {
	return func(o *TextOptions) { o.Underline = true }
}

// WithMaxWidth задает ширину переноса. Значение <= 0 отключает перенос.
func WithMaxWidth(n int) TextOption {
	return func(o *TextOptions) { o.MaxWidth = n }
}

func WithoutWrap() TextOption {
	return WithMaxWidth(0)
}

func WithPreserveNewLines(b bool) TextOption {
	return func(o *TextOptions) { o.PreserveNewLines = b }
}

// WithPatch накладывает частично заданные опции.
func WithPatch(p TextOptionsPatch) TextOption {
	return func(o *TextOptions) { *o = p.Merge(*o) }
}

// TextOptionsPatch - частично заданные опции текста, как они приходят из JSON.
// nil поле означает "оставить значение базовых опций".
type TextOptionsPatch struct {
	Bold             *bool `json:"bold,omitempty"`
	Italic           *bool `json:"italic,omitempty"`
	Underline        *bool `json:"underline,omitempty"`
	MaxWidth         *int  `json:"maxWidth,omitempty"`
	PreserveNewLines *bool `json:"preserveNewLines,omitempty"`
}

// Merge возвращает base с переопределенными заданными полями патча.
func (p TextOptionsPatch) Merge(base TextOptions) TextOptions {
	if p.Bold != nil {
		base.Bold = *p.Bold
	}
	if p.Italic != nil {
		base.Italic = *p.Italic
	}
	if p.Underline != nil {
		base.Underline = *p.Underline
	}
	if p.MaxWidth != nil {
		base.MaxWidth = *p.MaxWidth
	}
	if p.PreserveNewLines != nil {
		base.PreserveNewLines = *p.PreserveNewLines
	}
	return base
}
