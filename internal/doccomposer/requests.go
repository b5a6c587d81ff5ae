package doccomposer

import (
	"github.com/aisa-it/doccomposer/internal/doccomposer/dao"
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

type RenderRequest struct {
	Renderer string            `json:"renderer" validate:"renderer"`
	Document *edtypes.Document `json:"document" validate:"required"`
}

type RenderResponse struct {
	Renderer string `json:"renderer"`
	Content  string `json:"content"`
	Elements int    `json:"elements"`
}

type SaveResponse struct {
	ID       string `json:"id,omitempty"`
	Renderer string `json:"renderer"`
	Storage  string `json:"storage"`
	Size     int    `json:"size"`
}

type ImportResponse struct {
	Renderer string            `json:"renderer"`
	Content  string            `json:"content"`
	Document *edtypes.Document `json:"document"`
}

type DocumentLight struct {
	ID       string `json:"id"`
	Renderer string `json:"renderer"`
	Size     int    `json:"size"`
}

func toLight(d dao.RenderedDocument) DocumentLight {
	return DocumentLight{ID: d.ID.String(), Renderer: d.Renderer, Size: d.Size}
}
