// Пакет предоставляет хранилища отрисованных документов: локальный файл, Minio, S3 и база данных.
// Все реализации принимают готовую строку и сохраняют ее без изменений.
package filestorage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aisa-it/doccomposer/internal/doccomposer/config"
)

const (
	UploadTries = 20

	ContentType = "text/plain; charset=utf-8"
)

var ErrUnknownStorage = errors.New("unknown storage type")

// Storage сохраняет отрисованный документ.
type Storage interface {
	Save(content string) error
}

// NamedStorage дополнительно возвращает имя, под которым сохранен документ.
type NamedStorage interface {
	Storage
	SaveNamed(content string, metadata *Metadata) (string, error)
}

// Metadata - сведения о документе, сохраняемые вместе с ним там, где это поддерживается.
type Metadata struct {
	Renderer string
	Source   string
}

func (m Metadata) GetMap() map[string]string {
	meta := make(map[string]string)
	if m.Renderer != "" {
		meta["renderer"] = m.Renderer
	}
	if m.Source != "" {
		meta["source"] = m.Source
	}
	return meta
}

// NewStorage создает хранилище по cfg.StorageType. Для хранилища db требуется открытое подключение.
func NewStorage(cfg *config.Config, db *gorm.DB) (NamedStorage, error) {
	switch cfg.StorageType {
	case config.StorageLocal, "":
		path := cfg.OutputPath
		if path == "" {
			path = config.DefaultOutputPath
		}
		return NewLocalStorage(path), nil
	case config.StorageMinio:
		return NewMinioStorage(cfg.AWSEndpoint, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSUseSSL, cfg.AWSBucketName)
	case config.StorageS3:
		return NewS3Storage(cfg.AWSRegion, cfg.AWSEndpoint, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSBucketName)
	case config.StorageDB:
		if db == nil {
			return nil, errors.New("db storage requires database connection")
		}
		return NewDBStorage(db, cfg.Renderer), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.StorageType)
}
