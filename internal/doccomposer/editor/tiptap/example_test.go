package tiptap_test

import (
	"fmt"
	"strings"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/tiptap"
	"github.com/aisa-it/doccomposer/internal/doccomposer/export"
)

// ExampleParseJSON демонстрирует разбор TipTap JSON и отрисовку в простой текст.
func ExampleParseJSON() {
	jsonContent := `{
		"type": "doc",
		"content": [
			{
				"type": "paragraph",
				"content": [{"type": "text", "marks": [{"type": "bold"}], "text": "Привет"}]
			},
			{"type": "image", "attrs": {"src": "diagram.png"}}
		]
	}`

	doc, err := tiptap.ParseJSON(strings.NewReader(jsonContent))
	if err != nil {
		fmt.Printf("Ошибка парсинга: %v\n", err)
		return
	}

	out, err := doc.Render(export.PlainTextRenderer{})
	if err != nil {
		fmt.Printf("Ошибка отрисовки: %v\n", err)
		return
	}
	fmt.Println(out)

	// Output:
	// **Привет**
	// [IMAGE: diagram.png]
}
