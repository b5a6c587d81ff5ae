package filestorage

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aisa-it/doccomposer/internal/doccomposer/dao"
)

// S3Storage сохраняет документы в S3 совместимое хранилище через aws-sdk-go-v2.
type S3Storage struct {
	client     *s3.Client
	bucketName string

	Prefix string
}

// NewS3Storage создает клиент. Пустой endpoint означает AWS, пустые ключи - цепочку учетных данных по умолчанию.
func NewS3Storage(region, endpoint, accessKeyID, secretAccessKey, bucketName string) (*S3Storage, error) {
	opts := []func(*s3config.LoadOptions) error{s3config.WithRegion(region)}
	if accessKeyID != "" {
		opts = append(opts, s3config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}

	s3cfg, err := s3config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(s3cfg, func(o *s3.Options) {
		if endpoint != "" {
			if !strings.Contains(endpoint, "://") {
				endpoint = "http://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Storage(client, bucketName), nil
}

func newS3Storage(client *s3.Client, bucketName string) *S3Storage {
	return &S3Storage{client: client, bucketName: bucketName, Prefix: "documents/"}
}

func (s *S3Storage) Save(content string) error {
	_, err := s.SaveNamed(content, nil)
	return err
}

func (s *S3Storage) SaveNamed(content string, metadata *Metadata) (string, error) {
	name := s.Prefix + dao.GenUUID().String() + ".txt"

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(name),
		Body:          strings.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(ContentType),
	}
	if metadata != nil {
		input.Metadata = metadata.GetMap()
	}

	if _, err := s.client.PutObject(context.Background(), input); err != nil {
		return "", err
	}
	return name, nil
}
