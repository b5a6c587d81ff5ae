package apierrors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFormattedMessage(t *testing.T) {
	e := ErrValidation.WithFormattedMessage("renderer")
	assert.Equal(t, "validation failed: renderer", e.Error())
	assert.Equal(t, "Ошибка валидации: renderer", e.RuErr)
	assert.Equal(t, ErrValidation.Code, e.Code)

	e = ErrValidation.WithFormattedMessage()
	assert.Equal(t, "validation failed: ", e.Err)
}

func TestAllCodesUnique(t *testing.T) {
	seen := make(map[int]string)
	for _, e := range All {
		if prev, ok := seen[e.Code]; ok {
			t.Fatalf("code %d used by %q and %q", e.Code, prev, e.Err)
		}
		seen[e.Code] = e.Err
	}
	assert.Len(t, seen, 16)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrGeneric.HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, ErrStorageSave.HTTPStatus())
}
