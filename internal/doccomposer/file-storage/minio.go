package filestorage

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aisa-it/doccomposer/internal/doccomposer/dao"
)

// MinioStorage сохраняет каждый документ отдельным объектом <prefix><uuid>.txt.
type MinioStorage struct {
	client     *minio.Client
	bucketName string

	Prefix     string
	Tries      int
	RetryDelay time.Duration
}

func NewMinioStorage(endpoint string, accessKeyID string, secretAccessKey string, useSSL bool, bucketName string) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(context.Background(), bucketName)
	if err != nil {
		return nil, err
	}

	if !exists {
		// Create bucket if not exist
		if err := client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return newMinioStorage(client, bucketName), nil
}

func newMinioStorage(client *minio.Client, bucketName string) *MinioStorage {
	return &MinioStorage{
		client:     client,
		bucketName: bucketName,
		Prefix:     "documents/",
		Tries:      UploadTries,
		RetryDelay: 20 * time.Second,
	}
}

func (s *MinioStorage) Save(content string) error {
	_, err := s.SaveNamed(content, nil)
	return err
}

func (s *MinioStorage) SaveNamed(content string, metadata *Metadata) (string, error) {
	name := s.Prefix + dao.GenUUID().String() + ".txt"

	putOptions := minio.PutObjectOptions{ContentType: ContentType}
	if metadata != nil {
		putOptions.UserTags = metadata.GetMap()
	}

	tries := max(s.Tries, 1)
	var err error
	for i := range tries {
		_, err = s.client.PutObject(context.Background(),
			s.bucketName,
			name,
			strings.NewReader(content),
			int64(len(content)),
			putOptions,
		)
		if err != nil {
			resp := minio.ToErrorResponse(err)
			slog.Error("Upload document to minio", "name", name, "try", i+1, "code", resp.StatusCode, "msg", resp.Message, "err", err)
			if i+1 < tries {
				time.Sleep(s.RetryDelay)
			}
			continue
		}
		return name, nil
	}
	return "", err
}
