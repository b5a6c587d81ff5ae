package tiptap

import (
	"strings"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

// parseParagraph собирает текст параграфа. Переносы hardBreak внутри параграфа становятся "\n".
// Стиль берется общий для всех непустых текстовых нод, опции из attrs накладываются на значения по умолчанию.
func parseParagraph(node TipTapNode) edtypes.Text {
	var sb strings.Builder
	styles := markSet{bold: true, italic: true, underline: true}
	hasText := false

	for _, child := range node.Content {
		switch child.Type {
		case nodeText:
			sb.WriteString(child.Text)
			if strings.TrimSpace(child.Text) == "" {
				continue
			}
			hasText = true
			styles = styles.intersect(parseMarks(child.Marks))
		case nodeHardBreak:
			sb.WriteString("\n")
		case nodeTab:
			sb.WriteString("\t")
		}
	}
	if !hasText {
		styles = markSet{}
	}

	return edtypes.NewText(sb.String(), append(styles.options(), edtypes.WithPatch(optionsPatch(node.Attrs)))...)
}

// parseHeading - заголовок это жирный параграф.
func parseHeading(node TipTapNode) edtypes.Text {
	text := parseParagraph(node)
	text.Options.Bold = true
	return text
}

func parseCodeBlock(node TipTapNode) edtypes.Text {
	var sb strings.Builder
	for _, child := range node.Content {
		if child.Type == nodeText {
			sb.WriteString(child.Text)
		}
	}
	return edtypes.NewText(sb.String(), edtypes.WithoutWrap())
}

func parseImage(node TipTapNode) edtypes.Element {
	src := getAttrString(node.Attrs, attrSrc)
	if src == "" {
		return nil
	}
	return edtypes.NewImage(src)
}

// optionsPatch читает заданные в attrs опции. Отсутствующие или null атрибуты не меняют значения по умолчанию.
// Стили в attrs встречаются только у параграфов без текста, где их не на что повесить как marks.
func optionsPatch(attrs map[string]interface{}) edtypes.TextOptionsPatch {
	return edtypes.TextOptionsPatch{
		Bold:             getAttrBoolPtr(attrs, attrBold),
		Italic:           getAttrBoolPtr(attrs, attrItalic),
		Underline:        getAttrBoolPtr(attrs, attrUnderline),
		MaxWidth:         getAttrIntPtr(attrs, attrMaxWidth),
		PreserveNewLines: getAttrBoolPtr(attrs, attrPreserveNewLines),
	}
}
