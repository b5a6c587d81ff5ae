package edtypes

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TipTapParser - функция для парсинга TipTap JSON, устанавливается из tiptap пакета
var TipTapParser func(io.Reader) (*Document, error)

// TipTapSerializer - функция для сериализации Document в TipTap JSON, устанавливается из tiptap пакета
var TipTapSerializer func(*Document) ([]byte, error)

// Document - упорядоченная последовательность элементов. Элементы только добавляются.
type Document struct {
	elements []Element
}

func NewDocument(elements ...Element) *Document {
	d := &Document{}
	for _, el := range elements {
		d.Add(el)
	}
	return d
}

func (d *Document) Add(el Element) {
	if el == nil {
		return
	}
	d.elements = append(d.elements, el)
}

func (d *Document) Len() int {
	return len(d.elements)
}

// Elements возвращает копию списка элементов.
func (d *Document) Elements() []Element {
	out := make([]Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Render отрисовывает элементы по порядку и соединяет результаты одним "\n".
// При первой ошибке возвращается ошибка без частичного результата.
func (d *Document) Render(r Renderer) (string, error) {
	if r == nil {
		return "", errors.New("render document: nil renderer")
	}
	parts := make([]string, 0, len(d.elements))
	for i, el := range d.elements {
		s, err := el.Accept(r)
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n"), nil
}

// UnmarshalJSON реализует кастомную десериализацию TipTap JSON в Document.
func (d *Document) UnmarshalJSON(data []byte) error {
	if TipTapParser == nil {
		return errors.New("TipTapParser not registered, import tiptap package to enable TipTap JSON parsing")
	}

	doc, err := TipTapParser(bytes.NewReader(data))
	if err != nil {
		return err
	}

	d.elements = doc.elements
	return nil
}

// MarshalJSON реализует кастомную сериализацию Document в TipTap JSON.
func (d Document) MarshalJSON() ([]byte, error) {
	if TipTapSerializer == nil {
		return nil, errors.New("TipTapSerializer not registered, import tiptap package to enable TipTap JSON serialization")
	}

	return TipTapSerializer(&d)
}

// Value реализует интерфейс driver.Valuer для сохранения Document в JSONB.
func (d Document) Value() (driver.Value, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan реализует интерфейс sql.Scanner для чтения Document из JSONB.
func (d *Document) Scan(value interface{}) error {
	if value == nil {
		*d = Document{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return d.UnmarshalJSON(v)
	case string:
		return d.UnmarshalJSON([]byte(v))
	}
	return fmt.Errorf("unsupported type for Document: %T", value)
}

func (Document) GormDataType() string {
	return "jsonb"
}
