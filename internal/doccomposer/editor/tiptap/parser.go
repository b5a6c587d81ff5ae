package tiptap

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

// ParseJSON парсит JSON контент TipTap редактора в документ.
// Неизвестные ноды пропускаются с предупреждением в лог.
func ParseJSON(r io.Reader) (*edtypes.Document, error) {
	var tipTapDoc TipTapDocument
	if err := json.NewDecoder(r).Decode(&tipTapDoc); err != nil {
		return nil, err
	}
	if tipTapDoc.Type != "" && tipTapDoc.Type != nodeDoc {
		return nil, fmt.Errorf("unexpected root node type %q", tipTapDoc.Type)
	}

	doc := edtypes.NewDocument()
	for _, node := range tipTapDoc.Content {
		if elem := parseNode(node); elem != nil {
			doc.Add(elem)
		}
	}

	return doc, nil
}

// parseNode парсит ноду верхнего уровня и возвращает соответствующий элемент.
func parseNode(node TipTapNode) edtypes.Element {
	switch node.Type {
	case nodeParagraph:
		return parseParagraph(node)
	case nodeHeading:
		return parseHeading(node)
	case nodeCodeBlock:
		return parseCodeBlock(node)
	case nodeImage:
		return parseImage(node)
	case nodeHardBreak:
		return edtypes.NewLine{}
	case nodeTab:
		return edtypes.Tab{}
	default:
		slog.Warn("Unknown node type", "type", node.Type)
		return nil
	}
}
