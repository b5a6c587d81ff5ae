// Управление конфигурацией приложения из переменных окружения.
// Содержит структуру Config и функции Load/ReadConfig для ее загрузки.
//
// Основные возможности:
//   - Загрузка конфигурации из переменных окружения с использованием тегов struct.
//   - Маскировка секретных значений в логах.
//   - Значения по умолчанию и проверка выбранного рендерера и хранилища.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/aisa-it/doccomposer/internal/doccomposer/export"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageS3    = "s3"
	StorageDB    = "db"

	DefaultOutputPath = "saveDocElements.txt"
)

var StorageTypes = []string{StorageLocal, StorageMinio, StorageS3, StorageDB}

type Config struct {
	Renderer    string `env:"DOC_RENDERER"`
	MaxWidth    int    `env:"DOC_MAX_WIDTH"`
	StorageType string `env:"DOC_STORAGE"`
	OutputPath  string `env:"DOC_OUTPUT_PATH"`

	AWSRegion     string `env:"AWS_REGION"`
	AWSAccessKey  string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	AWSEndpoint   string `env:"AWS_S3_ENDPOINT_URL"`
	AWSBucketName string `env:"AWS_S3_BUCKET_NAME"`
	AWSUseSSL     bool   `env:"AWS_S3_USE_SSL"`

	DatabaseDSN string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH"`

	HTTPAddr    string `env:"HTTP_ADDR"`
	MetricsAddr string `env:"METRICS_ADDR"`

	LimitMaxElements int `env:"LIMIT_MAX_ELEMENTS"`
	LimitMaxBytes    int `env:"LIMIT_MAX_BYTES"`
}

// Load читает конфигурацию из окружения, заполняет значения по умолчанию и проверяет ее.
func Load() (*Config, error) {
	config := &Config{}

	envConfig("env", config)
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ReadConfig загружает конфигурацию. При ошибке приложение завершает работу.
func ReadConfig() *Config {
	config, err := Load()
	if err != nil {
		slog.Error("Read config", "err", err)
		os.Exit(1)
	}
	return config
}

func (c *Config) setDefaults() {
	if c.Renderer == "" {
		c.Renderer = export.DefaultRenderer
	}
	// DOC_MAX_WIDTH=0 отключает перенос, поэтому умолчание только для незаданной переменной
	if GetEnv("DOC_MAX_WIDTH") == "" {
		c.MaxWidth = 80
	}
	if c.StorageType == "" {
		c.StorageType = StorageLocal
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.AWSRegion == "" {
		c.AWSRegion = "us-east-1"
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = ":2112"
	}
	if c.LimitMaxElements <= 0 {
		c.LimitMaxElements = 10000
	}
	if c.LimitMaxBytes <= 0 {
		c.LimitMaxBytes = 1 << 20
	}
}

// Validate проверяет согласованность параметров.
func (c *Config) Validate() error {
	c.StorageType = strings.ToLower(c.StorageType)
	if !slices.Contains(StorageTypes, c.StorageType) {
		return fmt.Errorf("DOC_STORAGE must be one of %s, got %q", strings.Join(StorageTypes, ", "), c.StorageType)
	}

	if _, err := export.NewRenderer(c.Renderer); err != nil {
		return fmt.Errorf("DOC_RENDERER: %w", err)
	}

	switch c.StorageType {
	case StorageMinio:
		if c.AWSEndpoint == "" {
			return errors.New("AWS_S3_ENDPOINT_URL is required for minio storage")
		}
		fallthrough
	case StorageS3:
		if c.AWSBucketName == "" {
			return errors.New("AWS_S3_BUCKET_NAME is required for object storage")
		}
	case StorageDB:
		if c.DatabaseDSN == "" && c.SQLitePath == "" {
			return errors.New("DATABASE_URL or SQLITE_PATH is required for db storage")
		}
	}
	return nil
}

// Присваивает полям в переданной структуре значения переменных. Название переменной для каждого поля лежит в теге этого поля.
func envConfig(key string, s interface{}) {
	v := reflect.ValueOf(s).Elem()
	typeParam := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fName := typeParam.Field(i).Name
		fEnvTag := typeParam.Field(i).Tag.Get(key)

		if fEnvTag == "" || !Exist(fEnvTag) {
			continue
		}

		value := GetEnv(fEnvTag)
		if value == "" {
			continue
		}

		logValue := value
		if isSecret(fName) {
			logValue = maskSecret(value)
		}
		slog.Info("Set config value",
			slog.String("key", typeParam.Name()+"."+fName),
			slog.String("value", logValue),
			slog.String("source", "ENVIRONMENT"),
		)

		switch v.Field(i).Interface().(type) {
		case string:
			v.Field(i).SetString(value)
		case int:
			v.Field(i).SetInt(int64(GetIntEnv(fEnvTag)))
		case bool:
			v.Field(i).SetBool(GetBoolEnv(fEnvTag))
		}
	}
}

func isSecret(field string) bool {
	field = strings.ToLower(field)
	return strings.Contains(field, "pass") || strings.Contains(field, "secret") || strings.Contains(field, "token") || strings.Contains(field, "dsn") || strings.Contains(field, "key")
}

// maskSecret оставляет видимыми первый и последний символы.
func maskSecret(value string) string {
	runes := []rune(value)
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}
