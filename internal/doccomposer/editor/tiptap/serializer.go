package tiptap

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

// Serialize сериализует документ в TipTap JSON.
func Serialize(doc *edtypes.Document) ([]byte, error) {
	elements := doc.Elements()
	tipTapDoc := TipTapDocument{
		Type:    nodeDoc,
		Content: make([]TipTapNode, 0, len(elements)),
	}

	for _, elem := range elements {
		if node := serializeElement(elem); node != nil {
			tipTapDoc.Content = append(tipTapDoc.Content, *node)
		}
	}

	return json.Marshal(tipTapDoc)
}

// serializeElement преобразует элемент в TipTap ноду.
func serializeElement(elem edtypes.Element) *TipTapNode {
	switch e := elem.(type) {
	case edtypes.Text:
		return serializeText(e)
	case edtypes.Image:
		return &TipTapNode{Type: nodeImage, Attrs: map[string]interface{}{attrSrc: e.Path}}
	case edtypes.NewLine:
		return &TipTapNode{Type: nodeHardBreak}
	case edtypes.Tab:
		return &TipTapNode{Type: nodeTab}
	default:
		slog.Warn("Unknown element type for serialization", "type", e)
		return nil
	}
}

// serializeText преобразует текст в параграф. Переносы строк становятся hardBreak нодами.
func serializeText(t edtypes.Text) *TipTapNode {
	node := &TipTapNode{
		Type:  nodeParagraph,
		Attrs: make(map[string]interface{}),
	}

	// Добавляем атрибуты если они не default
	def := edtypes.DefaultTextOptions()
	if t.Options.MaxWidth != def.MaxWidth {
		node.Attrs[attrMaxWidth] = t.Options.MaxWidth
	}
	if t.Options.PreserveNewLines != def.PreserveNewLines {
		node.Attrs[attrPreserveNewLines] = t.Options.PreserveNewLines
	}

	marks := serializeMarks(t.Options)
	if strings.TrimSpace(t.Content) == "" {
		for _, mark := range marks {
			node.Attrs[mark.Type] = true
		}
	}

	for i, line := range strings.Split(t.Content, "\n") {
		if i > 0 {
			node.Content = append(node.Content, TipTapNode{Type: nodeHardBreak})
		}
		if line != "" {
			node.Content = append(node.Content, TipTapNode{Type: nodeText, Text: line, Marks: marks})
		}
	}

	return node
}
