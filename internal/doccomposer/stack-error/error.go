// Ошибка с трассой мест, через которые она прошла, и контекстом для лога.
package stack_error

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/labstack/echo/v4"
)

// Frame - место, где ошибка была обернута или дополнена.
type Frame struct {
	File string
	Line int
	Msg  string
}

func (f Frame) String() string {
	return fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Msg)
}

type TrackerError struct {
	Context map[string]any
	Trace   []Frame
	cause   error
}

// TrackErrorStack оборачивает ошибку или дописывает место вызова в уже существующую трассу.
func TrackErrorStack(err error) *TrackerError {
	var te *TrackerError
	if errors.As(err, &te) {
		te.Trace = append(te.Trace, callerFrame(err))
		return te
	}

	return &TrackerError{
		Context: make(map[string]any),
		Trace:   []Frame{callerFrame(err)},
		cause:   err,
	}
}

// AddContext добавляет значение в контекст. Уже заданный ключ не перезаписывается.
func (te *TrackerError) AddContext(k string, v any) *TrackerError {
	if _, ok := te.Context[k]; !ok {
		te.Context[k] = v
	}
	return te
}

func (te *TrackerError) AddErr(err error) *TrackerError {
	te.Trace = append(te.Trace, callerFrame(err))
	return te
}

func (te *TrackerError) Error() string {
	if te.cause != nil {
		return te.cause.Error()
	}
	return "TrackerError"
}

func (te *TrackerError) Unwrap() error {
	return te.cause
}

// LogValue раскрывает ошибку в группу: текст, контекст и трасса.
func (te *TrackerError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(te.Context)+2)
	attrs = append(attrs, slog.String("msg", te.Error()))
	for k, v := range te.Context {
		attrs = append(attrs, slog.Any(k, v))
	}

	trace := make([]string, len(te.Trace))
	for i, f := range te.Trace {
		trace[i] = f.String()
	}
	attrs = append(attrs, slog.Any("trace", trace))
	return slog.GroupValue(attrs...)
}

// GetError пишет ошибку в лог вместе с трассой, контекстом и данными запроса.
func GetError(c echo.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{slog.Any("error", err)}

	var trackerError *TrackerError
	if errors.As(err, &trackerError) && trackerError != err {
		attrs = append(attrs, slog.Any("tracked", trackerError))
	}

	if c != nil {
		attrs = append(attrs, slog.Group("request",
			slog.String("method", c.Request().Method),
			slog.String("url", c.Request().URL.String())))
	}

	slog.Error("stack error", attrs...)
}

func callerFrame(err error) Frame {
	f := Frame{File: "unknown"}
	if err != nil {
		f.Msg = err.Error()
	}
	_, path, no, ok := runtime.Caller(2)
	if ok {
		_, f.File = filepath.Split(path)
		f.Line = no
	}
	return f
}
