// DAO (Data Access Object) - доступ к базе данных отрисованных документов.
package dao

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
	_ "github.com/aisa-it/doccomposer/internal/doccomposer/editor/tiptap"
)

// GenUUID генерирует уникальный идентификатор в формате UUID.
func GenUUID() uuid.UUID {
	u2, _ := uuid.NewV4()
	return u2
}

// RenderedDocument - сохраненный результат отрисовки вместе с исходным документом.
type RenderedDocument struct {
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id"`

	CreatedAt time.Time `json:"created_at"`

	Renderer string           `json:"renderer" gorm:"index"`
	Content  string           `json:"content"`
	Size     int              `json:"size"`
	Source   edtypes.Document `json:"source"`
}

func (RenderedDocument) TableName() string { return "rendered_documents" }

func (d *RenderedDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = GenUUID()
	}
	d.Size = len(d.Content)
	return nil
}

// Models - список моделей для миграции.
func Models() []any {
	return []any{&RenderedDocument{}}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func CreateRenderedDocument(db *gorm.DB, doc *RenderedDocument) error {
	return db.Create(doc).Error
}

func GetRenderedDocument(db *gorm.DB, id uuid.UUID) (RenderedDocument, error) {
	var doc RenderedDocument
	err := db.Where("id = ?", id).First(&doc).Error
	return doc, err
}

// ListRenderedDocuments возвращает последние сохраненные документы без содержимого.
func ListRenderedDocuments(db *gorm.DB, limit int) ([]RenderedDocument, error) {
	var docs []RenderedDocument
	err := db.Select("id", "created_at", "renderer", "size").
		Order("created_at desc").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}
