package filestorage

import (
	"gorm.io/gorm"

	"github.com/aisa-it/doccomposer/internal/doccomposer/dao"
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

// DBStorage сохраняет документы в таблицу rendered_documents.
type DBStorage struct {
	db       *gorm.DB
	renderer string
}

func NewDBStorage(db *gorm.DB, renderer string) *DBStorage {
	return &DBStorage{db: db, renderer: renderer}
}

func (s *DBStorage) Save(content string) error {
	_, err := s.SaveNamed(content, nil)
	return err
}

func (s *DBStorage) SaveNamed(content string, metadata *Metadata) (string, error) {
	return s.SaveDocument(nil, content, metadata)
}

// SaveDocument сохраняет результат отрисовки вместе с исходным документом.
func (s *DBStorage) SaveDocument(source *edtypes.Document, content string, metadata *Metadata) (string, error) {
	rec := dao.RenderedDocument{
		Renderer: s.renderer,
		Content:  content,
	}
	if metadata != nil && metadata.Renderer != "" {
		rec.Renderer = metadata.Renderer
	}
	if source != nil {
		rec.Source = *source
	}

	if err := dao.CreateRenderedDocument(s.db, &rec); err != nil {
		return "", err
	}
	return rec.ID.String(), nil
}

func (s *DBStorage) DB() *gorm.DB {
	return s.db
}
