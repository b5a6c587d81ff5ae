// Пакет tiptap предоставляет JSON кодек документа в формате TipTap редактора.
// Преобразует JSON структуры TipTap в элементы пакета edtypes и обратно.
package tiptap

// TipTapDocument представляет корневой документ TipTap.
type TipTapDocument struct {
	Type    string       `json:"type"`
	Content []TipTapNode `json:"content,omitempty"`
}

// TipTapNode представляет узел в дереве документа TipTap.
// Используется универсальная структура с map для атрибутов для поддержки различных типов нод.
type TipTapNode struct {
	Type    string                 `json:"type"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []TipTapNode           `json:"content,omitempty"`
	Marks   []TipTapMark           `json:"marks,omitempty"`
	Text    string                 `json:"text,omitempty"`
}

// TipTapMark представляет форматирование текста (bold, italic, underline).
type TipTapMark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

const (
	nodeDoc       = "doc"
	nodeParagraph = "paragraph"
	nodeHeading   = "heading"
	nodeCodeBlock = "codeBlock"
	nodeText      = "text"
	nodeImage     = "image"
	nodeHardBreak = "hardBreak"
	nodeTab       = "tab"

	markBold      = "bold"
	markItalic    = "italic"
	markUnderline = "underline"

	attrMaxWidth         = "maxWidth"
	attrPreserveNewLines = "preserveNewLines"
	attrSrc              = "src"
	attrBold             = "bold"
	attrItalic           = "italic"
	attrUnderline        = "underline"
)
