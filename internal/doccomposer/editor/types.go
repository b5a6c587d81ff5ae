package editor

import (
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

// Реэкспорт типов из edtypes
type (
	Document         = edtypes.Document
	Element          = edtypes.Element
	ElementKind      = edtypes.ElementKind
	Text             = edtypes.Text
	TextOptions      = edtypes.TextOptions
	TextOption       = edtypes.TextOption
	TextOptionsPatch = edtypes.TextOptionsPatch
	Image            = edtypes.Image
	NewLine          = edtypes.NewLine
	Tab              = edtypes.Tab
	Renderer         = edtypes.Renderer
	BaseRenderer     = edtypes.BaseRenderer
)

// Реэкспорт констант
const (
	KindText    = edtypes.KindText
	KindImage   = edtypes.KindImage
	KindNewLine = edtypes.KindNewLine
	KindTab     = edtypes.KindTab

	DefaultMaxWidth = edtypes.DefaultMaxWidth
)

// Реэкспорт функций
var (
	NewDocument        = edtypes.NewDocument
	NewText            = edtypes.NewText
	NewImage           = edtypes.NewImage
	DefaultTextOptions = edtypes.DefaultTextOptions

	WithBold             = edtypes.WithBold
	WithItalic           = edtypes.WithItalic
	WithUnderline        = edtypes.WithUnderline
	WithMaxWidth         = edtypes.WithMaxWidth
	WithoutWrap          = edtypes.WithoutWrap
	WithPreserveNewLines = edtypes.WithPreserveNewLines
	WithPatch            = edtypes.WithPatch

	ErrNotImplemented = edtypes.ErrNotImplemented
)
