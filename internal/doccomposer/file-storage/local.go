package filestorage

import (
	"os"
	"path/filepath"
)

// LocalStorage перезаписывает один файл при каждом сохранении.
type LocalStorage struct {
	path string
}

func NewLocalStorage(path string) *LocalStorage {
	return &LocalStorage{path: path}
}

func (s *LocalStorage) Save(content string) error {
	_, err := s.SaveNamed(content, nil)
	return err
}

func (s *LocalStorage) SaveNamed(content string, _ *Metadata) (string, error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(s.path, []byte(content), 0644); err != nil {
		return "", err
	}
	return s.path, nil
}

func (s *LocalStorage) Path() string {
	return s.path
}
