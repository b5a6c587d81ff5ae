// Пакет содержит определения ошибок HTTP API. Каждая ошибка имеет код, статус HTTP и описание на двух языках.
package apierrors

import (
	"fmt"
	"net/http"
	"strings"
)

type DefinedError struct {
	Code       int    `json:"code"`
	StatusCode int    `json:"-"`
	Err        string `json:"error"`
	RuErr      string `json:"ru_error,omitempty"`
}

func (e DefinedError) Error() string {
	return e.Err
}

var (
	// 1*** - common errors
	ErrGeneric           = DefinedError{Code: 1001, Err: "bad request", RuErr: "Некорректный запрос"}
	ErrInternal          = DefinedError{Code: 1002, StatusCode: http.StatusInternalServerError, Err: "internal server error", RuErr: "Внутренняя ошибка сервера"}
	ErrEntityToLarge     = DefinedError{Code: 1003, StatusCode: http.StatusRequestEntityTooLarge, Err: "request entity too large", RuErr: "Размер запроса превышает допустимый"}
	ErrValidation        = DefinedError{Code: 1004, Err: "validation failed: %s", RuErr: "Ошибка валидации: %s"}
	ErrRouteNotFound     = DefinedError{Code: 1005, StatusCode: http.StatusNotFound, Err: "route not found", RuErr: "Метод не найден"}
	ErrMethodNotAllowed  = DefinedError{Code: 1006, StatusCode: http.StatusMethodNotAllowed, Err: "method not allowed", RuErr: "Метод не поддерживается"}
	ErrUnsupportedFormat = DefinedError{Code: 1007, StatusCode: http.StatusUnsupportedMediaType, Err: "unsupported content type", RuErr: "Неподдерживаемый формат данных"}

	// 2*** - document errors
	ErrDocumentInvalid     = DefinedError{Code: 2001, Err: "invalid document", RuErr: "Некорректный документ"}
	ErrDocumentTooLarge    = DefinedError{Code: 2002, StatusCode: http.StatusRequestEntityTooLarge, Err: "document has too many elements", RuErr: "Документ содержит слишком много элементов"}
	ErrHTMLImportFailed    = DefinedError{Code: 2003, Err: "html import failed", RuErr: "Не удалось импортировать HTML"}
	ErrDocumentNotFound    = DefinedError{Code: 2004, StatusCode: http.StatusNotFound, Err: "document not found", RuErr: "Документ не найден"}
	ErrInvalidDocumentID   = DefinedError{Code: 2005, Err: "invalid document id", RuErr: "Некорректный идентификатор документа"}
	ErrDocumentsDBDisabled = DefinedError{Code: 2006, StatusCode: http.StatusNotImplemented, Err: "saved documents are available only with db storage", RuErr: "Сохраненные документы доступны только при хранении в базе данных"}

	// 3*** - render errors
	ErrUnknownRenderer      = DefinedError{Code: 3001, Err: "unknown renderer", RuErr: "Неизвестный формат отрисовки"}
	ErrRendererNotSupported = DefinedError{Code: 3002, StatusCode: http.StatusUnprocessableEntity, Err: "renderer does not support element kind", RuErr: "Формат отрисовки не поддерживает элемент документа"}

	// 4*** - storage errors
	ErrStorageSave = DefinedError{Code: 4001, StatusCode: http.StatusBadGateway, Err: "document save failed", RuErr: "Не удалось сохранить документ"}
)

// All - все определенные ошибки в порядке кодов. Используется при генерации документации.
var All = []DefinedError{
	ErrGeneric, ErrInternal, ErrEntityToLarge, ErrValidation, ErrRouteNotFound, ErrMethodNotAllowed, ErrUnsupportedFormat,
	ErrDocumentInvalid, ErrDocumentTooLarge, ErrHTMLImportFailed, ErrDocumentNotFound, ErrInvalidDocumentID, ErrDocumentsDBDisabled,
	ErrUnknownRenderer, ErrRendererNotSupported,
	ErrStorageSave,
}

// HTTPStatus возвращает HTTP код ошибки. Для ошибок без кода используется 400.
func (e DefinedError) HTTPStatus() int {
	if http.StatusText(e.StatusCode) == "" {
		return http.StatusBadRequest
	}
	return e.StatusCode
}

func (e DefinedError) WithFormattedMessage(args ...interface{}) DefinedError {
	if len(args) > 0 {
		e.Err = fmt.Sprintf(e.Err, args...)
		e.RuErr = fmt.Sprintf(e.RuErr, args...)
	} else {
		e.Err = strings.Replace(e.Err, "%s", "", -1)
		e.RuErr = strings.Replace(e.RuErr, "%s", "", -1)
	}
	return e
}
