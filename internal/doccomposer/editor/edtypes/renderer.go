package edtypes

import (
	"errors"
	"fmt"
)

var ErrNotImplemented = errors.New("renderer does not implement element kind")

// NotImplementedError возвращается, когда рендерер не поддерживает вид элемента.
type NotImplementedError struct {
	Kind ElementKind
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("render %s: %s", e.Kind, ErrNotImplemented)
}

func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// Renderer преобразует элементы документа в строки. Реализации не хранят состояния
// и могут использоваться из нескольких горутин.
type Renderer interface {
	RenderText(Text) (string, error)
	RenderImage(Image) (string, error)
	RenderNewLine(NewLine) (string, error)
	RenderTab(Tab) (string, error)
}

// BaseRenderer встраивается в конкретные рендереры.
// Текст и изображения должны быть переопределены, перенос и табуляция имеют реализацию по умолчанию.
type BaseRenderer struct{}

func (BaseRenderer) RenderText(Text) (string, error) {
	return "", &NotImplementedError{Kind: KindText}
}

func (BaseRenderer) RenderImage(Image) (string, error) {
	return "", &NotImplementedError{Kind: KindImage}
}

func (BaseRenderer) RenderNewLine(NewLine) (string, error) {
	return "\n", nil
}

func (BaseRenderer) RenderTab(Tab) (string, error) {
	return "\t", nil
}
