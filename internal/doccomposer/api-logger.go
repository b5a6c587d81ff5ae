// Возврат ошибок API с логированием.
package doccomposer

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/aisa-it/doccomposer/internal/doccomposer/apierrors"
)

// Возврат ошибки 400 с универсальным сообщением
func EError(c echo.Context, err error) error {
	if customErr, ok := err.(apierrors.DefinedError); ok {
		return EErrorDefined(c, customErr)
	}
	if err == nil {
		slog.Error("Unknown API error",
			"method", c.Request().Method,
			"url", c.Request().URL,
			getCallerFile(),
		)
	} else {
		slog.Error("API error",
			"err", err,
			"method", c.Request().Method,
			"url", c.Request().URL,
			getCallerFile(),
		)
	}
	return EErrorDefined(c, apierrors.ErrGeneric)
}

// Возврат ошибки <status> с сообщением ошибки (404 не логируется)
func EErrorMsgStatus(c echo.Context, err error, status int) error {
	switch status {
	case http.StatusRequestEntityTooLarge:
		return EErrorDefined(c, apierrors.ErrEntityToLarge)
	case http.StatusNotFound:
		return EErrorDefined(c, apierrors.ErrRouteNotFound)
	case http.StatusMethodNotAllowed:
		return EErrorDefined(c, apierrors.ErrMethodNotAllowed)
	}

	er := apierrors.ErrGeneric
	er.StatusCode = status
	if err == nil {
		slog.Error("Unknown API error",
			"method", c.Request().Method,
			slog.Int("status", status),
			"url", c.Request().URL,
			getCallerFile(),
		)
		return EErrorDefined(c, er)
	}

	slog.Error("API error",
		"err", err,
		"method", c.Request().Method,
		slog.Int("status", status),
		"url", c.Request().URL,
		getCallerFile(),
	)
	er.Err = err.Error()
	return EErrorDefined(c, er)
}

// EErrorDefined возвращает JSON-ответ с кодом статуса и сообщением об ошибке.
func EErrorDefined(c echo.Context, err apierrors.DefinedError) error {
	return c.JSON(err.HTTPStatus(), err)
}

func getCallerFile() slog.Attr {
	_, path, no, ok := runtime.Caller(2)
	if !ok {
		return slog.Attr{}
	}
	_, file := filepath.Split(path)
	return slog.String("caller", fmt.Sprintf("%s:%d", file, no))
}
