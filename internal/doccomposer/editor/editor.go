// Пакет предоставляет редактор документа: добавление элементов, отрисовку с кешированием результата
// и сохранение через внешнее хранилище. Также содержит импорт документа из HTML.
package editor

import (
	"errors"
)

var ErrStorageRequired = errors.New("editor has no storage")

// Storage принимает отрисованный документ. Политика повторов и обработка ошибок на стороне реализации.
type Storage interface {
	Save(content string) error
}

// Editor - сессия редактирования одного документа. Не предназначен для одновременного изменения из нескольких горутин.
type Editor struct {
	doc      *Document
	renderer Renderer
	storage  Storage

	cache    string
	cached   bool
	cacheLen int
}

// NewEditor создает редактор. Если doc равен nil, создается пустой документ.
func NewEditor(doc *Document, r Renderer, s Storage) *Editor {
	if doc == nil {
		doc = NewDocument()
	}
	return &Editor{doc: doc, renderer: r, storage: s}
}

func (e *Editor) add(el Element) *Editor {
	e.doc.Add(el)
	e.cached = false
	e.cache = ""
	return e
}

func (e *Editor) AddText(text string, opts ...TextOption) *Editor {
	return e.add(NewText(text, opts...))
}

func (e *Editor) AddImage(path string) *Editor {
	return e.add(NewImage(path))
}

func (e *Editor) AddNewLine() *Editor {
	return e.add(NewLine{})
}

func (e *Editor) AddTab() *Editor {
	return e.add(Tab{})
}

// Render возвращает отрисованный документ. Если после прошлой успешной отрисовки ничего не добавлялось,
// рендерер повторно не вызывается.
func (e *Editor) Render() (string, error) {
	// документ только растет, поэтому совпадение длины означает неизменный документ
	if e.cached && e.cacheLen == e.doc.Len() {
		return e.cache, nil
	}

	out, err := e.doc.Render(e.renderer)
	if err != nil {
		return "", err
	}

	e.cache = out
	e.cached = true
	e.cacheLen = e.doc.Len()
	return out, nil
}

// Save отрисовывает документ и передает результат в хранилище без изменений.
// Ошибки рендерера и хранилища возвращаются как есть.
func (e *Editor) Save() error {
	if e.storage == nil {
		return ErrStorageRequired
	}

	out, err := e.Render()
	if err != nil {
		return err
	}
	return e.storage.Save(out)
}

func (e *Editor) Document() *Document {
	return e.doc
}

func (e *Editor) Renderer() Renderer {
	return e.renderer
}
