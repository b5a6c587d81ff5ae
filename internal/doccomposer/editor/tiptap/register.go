package tiptap

import (
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

func init() {
	edtypes.TipTapParser = ParseJSON
	edtypes.TipTapSerializer = Serialize
}
