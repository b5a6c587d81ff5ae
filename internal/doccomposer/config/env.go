package config

import (
	"os"
	"strconv"
)

// Exist сообщает, задана ли переменная окружения, даже пустая.
func Exist(key string) bool {
	_, exist := os.LookupEnv(key)
	return exist
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetIntEnv возвращает 0, если переменная не задана или не число.
func GetIntEnv(key string) int {
	return parseEnv(key, strconv.Atoi)
}

// GetBoolEnv возвращает false, если переменная не задана или не разбирается strconv.ParseBool.
func GetBoolEnv(key string) bool {
	return parseEnv(key, strconv.ParseBool)
}

func parseEnv[T any](key string, parse func(string) (T, error)) T {
	v, err := parse(os.Getenv(key))
	if err != nil {
		var zero T
		return zero
	}
	return v
}
