// Обработчики документов: отрисовка, сохранение, импорт HTML и просмотр сохраненных документов.
package doccomposer

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/aisa-it/doccomposer/internal/doccomposer/apierrors"
	"github.com/aisa-it/doccomposer/internal/doccomposer/dao"
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor"
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
	"github.com/aisa-it/doccomposer/internal/doccomposer/export"
	filestorage "github.com/aisa-it/doccomposer/internal/doccomposer/file-storage"
	errStack "github.com/aisa-it/doccomposer/internal/doccomposer/stack-error"
)

const defaultListLimit = 50

func (s *Services) AddDocumentServices(g *echo.Group) {
	g.POST("render/", s.renderDocument)
	g.POST("documents/", s.saveDocument)
	g.GET("documents/", s.listDocuments)
	g.GET("documents/:id/", s.getDocument)
	g.POST("import/html/", s.importHTML)
}

// namedSink передает результат редактора в именованное хранилище и запоминает имя сохраненного документа.
type namedSink struct {
	storage  filestorage.NamedStorage
	source   *edtypes.Document
	metadata *filestorage.Metadata

	name string
	size int
}

func (ns *namedSink) Save(content string) error {
	var err error
	if db, ok := ns.storage.(*filestorage.DBStorage); ok {
		ns.name, err = db.SaveDocument(ns.source, content, ns.metadata)
	} else {
		ns.name, err = ns.storage.SaveNamed(content, ns.metadata)
	}
	if err != nil {
		return err
	}
	ns.size = len(content)
	return nil
}

func (s *Services) bindRenderRequest(c echo.Context) (RenderRequest, edtypes.Renderer, error) {
	var req RenderRequest
	if err := c.Bind(&req); err != nil {
		return req, nil, EErrorDefined(c, apierrors.ErrDocumentInvalid)
	}
	if err := c.Validate(req); err != nil {
		return req, nil, EErrorDefined(c, apierrors.ErrValidation.WithFormattedMessage(err.Error()))
	}

	if req.Renderer == "" {
		req.Renderer = s.cfg.Renderer
	}
	renderer, err := export.NewRenderer(req.Renderer)
	if err != nil {
		return req, nil, EErrorDefined(c, apierrors.ErrUnknownRenderer)
	}

	if !s.limiter.CanAddElements(0, req.Document.Len()) {
		return req, nil, EErrorDefined(c, apierrors.ErrDocumentTooLarge)
	}
	return req, renderer, nil
}

func renderError(c echo.Context, err error) error {
	if errors.Is(err, edtypes.ErrNotImplemented) {
		return EErrorDefined(c, apierrors.ErrRendererNotSupported)
	}
	return EError(c, err)
}

// renderDocument godoc
// @id renderDocument
// @Summary документы: отрисовать документ
// @Description Отрисовывает документ TipTap выбранным рендерером и возвращает текст.
// @Tags Documents
// @Accept json
// @Produce json
// @Param data body RenderRequest true "Документ и рендерер"
// @Success 200 {object} RenderResponse "Результат отрисовки"
// @Failure 400 {object} apierrors.DefinedError "Некорректный документ"
// @Failure 422 {object} apierrors.DefinedError "Рендерер не поддерживает элемент"
// @Router /api/render/ [post]
func (s *Services) renderDocument(c echo.Context) error {
	req, renderer, err := s.bindRenderRequest(c)
	if renderer == nil {
		return err
	}

	ed := editor.NewEditor(req.Document, renderer, nil)
	start := time.Now()
	out, err := ed.Render()
	s.metrics.ObserveRender(req.Renderer, start, err)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, RenderResponse{
		Renderer: req.Renderer,
		Content:  out,
		Elements: req.Document.Len(),
	})
}

// saveDocument godoc
// @id saveDocument
// @Summary документы: сохранить документ
// @Description Отрисовывает документ и сохраняет результат в настроенное хранилище.
// @Tags Documents
// @Accept json
// @Produce json
// @Param data body RenderRequest true "Документ и рендерер"
// @Success 201 {object} SaveResponse "Сохраненный документ"
// @Failure 400 {object} apierrors.DefinedError "Некорректный документ"
// @Failure 502 {object} apierrors.DefinedError "Ошибка хранилища"
// @Router /api/documents/ [post]
func (s *Services) saveDocument(c echo.Context) error {
	req, renderer, err := s.bindRenderRequest(c)
	if renderer == nil {
		return err
	}

	sink := &namedSink{
		storage:  s.storage,
		source:   req.Document,
		metadata: &filestorage.Metadata{Renderer: req.Renderer, Source: "api"},
	}
	ed := editor.NewEditor(req.Document, renderer, sink)

	start := time.Now()
	if _, err := ed.Render(); err != nil {
		s.metrics.ObserveRender(req.Renderer, start, err)
		return renderError(c, err)
	}
	s.metrics.ObserveRender(req.Renderer, start, nil)

	if err := ed.Save(); err != nil {
		errStack.GetError(c, errStack.TrackErrorStack(err).
			AddContext("renderer", req.Renderer).
			AddContext("storage", s.cfg.StorageType))
		return EErrorDefined(c, apierrors.ErrStorageSave)
	}
	s.metrics.ObserveSave(s.cfg.StorageType, sink.size)

	return c.JSON(http.StatusCreated, SaveResponse{
		ID:       sink.name,
		Renderer: req.Renderer,
		Storage:  s.cfg.StorageType,
		Size:     sink.size,
	})
}

// importHTML godoc
// @id importHTML
// @Summary документы: импорт HTML
// @Description Преобразует HTML в документ и отрисовывает его.
// @Tags Documents
// @Accept html
// @Produce json
// @Param renderer query string false "Рендерер"
// @Param maxWidth query int false "Ширина переноса строк"
// @Success 200 {object} ImportResponse "Документ и результат отрисовки"
// @Failure 400 {object} apierrors.DefinedError "Ошибка импорта"
// @Router /api/import/html/ [post]
func (s *Services) importHTML(c echo.Context) error {
	rendererName := c.QueryParam("renderer")
	if rendererName == "" {
		rendererName = s.cfg.Renderer
	}
	renderer, err := export.NewRenderer(rendererName)
	if err != nil {
		return EErrorDefined(c, apierrors.ErrUnknownRenderer)
	}

	width := s.cfg.MaxWidth
	if raw := c.QueryParam("maxWidth"); raw != "" {
		width, err = strconv.Atoi(raw)
		if err != nil {
			return EErrorDefined(c, apierrors.ErrValidation.WithFormattedMessage("maxWidth must be integer"))
		}
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return EErrorMsgStatus(c, err, http.StatusRequestEntityTooLarge)
	}
	if !s.limiter.CanAcceptBytes(len(body)) {
		return EErrorDefined(c, apierrors.ErrEntityToLarge)
	}

	doc, err := editor.ParseDocument(bytes.NewReader(body), edtypes.WithMaxWidth(width))
	if err != nil {
		errStack.GetError(c, errStack.TrackErrorStack(err))
		return EErrorDefined(c, apierrors.ErrHTMLImportFailed)
	}
	if !s.limiter.CanAddElements(0, doc.Len()) {
		return EErrorDefined(c, apierrors.ErrDocumentTooLarge)
	}

	start := time.Now()
	out, err := editor.NewEditor(doc, renderer, nil).Render()
	s.metrics.ObserveRender(rendererName, start, err)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, ImportResponse{
		Renderer: rendererName,
		Content:  out,
		Document: doc,
	})
}

func (s *Services) documentsDB() (*gorm.DB, bool) {
	db, ok := s.storage.(*filestorage.DBStorage)
	if !ok {
		return nil, false
	}
	return db.DB(), true
}

// listDocuments godoc
// @id listDocuments
// @Summary документы: список сохраненных
// @Tags Documents
// @Produce json
// @Param limit query int false "Количество записей"
// @Success 200 {array} DocumentLight "Сохраненные документы"
// @Failure 501 {object} apierrors.DefinedError "Хранилище не поддерживает просмотр"
// @Router /api/documents/ [get]
func (s *Services) listDocuments(c echo.Context) error {
	db, ok := s.documentsDB()
	if !ok {
		return EErrorDefined(c, apierrors.ErrDocumentsDBDisabled)
	}

	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 {
			limit = l
		}
	}

	docs, err := dao.ListRenderedDocuments(db, limit)
	if err != nil {
		return EError(c, err)
	}

	res := make([]DocumentLight, 0, len(docs))
	for _, d := range docs {
		res = append(res, toLight(d))
	}
	return c.JSON(http.StatusOK, res)
}

// getDocument godoc
// @id getDocument
// @Summary документы: получить сохраненный документ
// @Tags Documents
// @Produce json
// @Param id path string true "ID документа"
// @Success 200 {object} dao.RenderedDocument "Документ"
// @Failure 404 {object} apierrors.DefinedError "Документ не найден"
// @Router /api/documents/{id}/ [get]
func (s *Services) getDocument(c echo.Context) error {
	db, ok := s.documentsDB()
	if !ok {
		return EErrorDefined(c, apierrors.ErrDocumentsDBDisabled)
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrInvalidDocumentID)
	}

	doc, err := dao.GetRenderedDocument(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EErrorDefined(c, apierrors.ErrDocumentNotFound)
		}
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}
