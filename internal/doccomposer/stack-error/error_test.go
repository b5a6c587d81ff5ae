package stack_error

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackErrorStack(t *testing.T) {
	base := errors.New("save failed")

	te := TrackErrorStack(base)
	te.AddContext("storage", "local").AddContext("storage", "minio")
	again := TrackErrorStack(te)

	assert.Same(t, te, again)
	assert.Len(t, te.Trace, 2)
	assert.Equal(t, "local", te.Context["storage"])
	assert.ErrorIs(t, te, base)
	assert.Equal(t, "save failed", te.Error())
	assert.Equal(t, "error_test.go", te.Trace[0].File)
	assert.Equal(t, "save failed", te.Trace[0].Msg)

	te.AddErr(errors.New("next"))
	assert.Len(t, te.Trace, 3)
	assert.Equal(t, "next", te.Trace[2].Msg)
}

func TestTrackErrorWrapped(t *testing.T) {
	te := TrackErrorStack(errors.New("disk full"))
	wrapped := fmt.Errorf("save: %w", te)

	assert.Same(t, te, TrackErrorStack(wrapped))
	assert.Len(t, te.Trace, 2)
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	te := TrackErrorStack(errors.New("disk full")).AddContext("renderer", "plain")
	logger.Error("failed", "error", te)

	out := buf.String()
	assert.Contains(t, out, `"msg":"disk full"`)
	assert.Contains(t, out, `"renderer":"plain"`)
	assert.Contains(t, out, `"trace":["error_test.go:`)
}

func TestGetErrorNil(t *testing.T) {
	assert.NotPanics(t, func() {
		GetError(nil, nil)
		GetError(nil, errors.New("plain"))
		GetError(nil, TrackErrorStack(errors.New("tracked")))
		GetError(nil, fmt.Errorf("wrap: %w", TrackErrorStack(errors.New("tracked"))))
	})
}
