// Основной пакет сервиса DocComposer. Отвечает за чтение конфигурации, подключение к базе данных,
// миграцию моделей и запуск HTTP сервера.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aisa-it/doccomposer/internal/doccomposer"
	"github.com/aisa-it/doccomposer/internal/doccomposer/config"
	"github.com/aisa-it/doccomposer/internal/doccomposer/dao"
	"github.com/aisa-it/doccomposer/internal/doccomposer/gormlogger"
)

var version string = "DEV"

// Пример запуска: go run main.go --trace
func main() {
	paramQueries := flag.Bool("paramQueries", true, "Mask queries params in log")
	noMigration := flag.Bool("noMigration", false, "Turn off DB migration")
	trace := flag.Bool("trace", false, "Verbose logs and sql trace")
	flag.Parse()

	PrintBanner()

	cfg := config.ReadConfig()

	if *trace {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Set prod log format
	if version != "DEV" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})))
	}

	slog.Info("DocComposer start.", "renderer", cfg.Renderer, "storage", cfg.StorageType)

	var db *gorm.DB
	if cfg.StorageType == config.StorageDB {
		var err error
		db, err = openDB(cfg, *paramQueries)
		if err != nil {
			slog.Error("Fail init DB connection", "err", err)
			os.Exit(1)
		}

		if !*noMigration {
			if err := dao.Migrate(db); err != nil {
				slog.Error("Fail migrate models", "err", err)
				os.Exit(1)
			}
			slog.Info("Models migrated")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := doccomposer.Server(ctx, db, cfg, version); err != nil {
		slog.Error("Server stopped with error", "err", err)
		os.Exit(1)
	}
	slog.Info("DocComposer stopped")
}

// openDB подключается к PostgreSQL, если задан DATABASE_URL, иначе к файлу SQLite.
func openDB(cfg *config.Config, paramQueries bool) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.NewGormLogger(slog.Default(), time.Second*4, paramQueries),
	}

	if cfg.DatabaseDSN != "" {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseDSN,
			PreferSimpleProtocol: false, // disables implicit prepared statement usage
		}), gormCfg)
		if err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		sqlDB.SetConnMaxIdleTime(time.Minute * 15)
		return db, nil
	}

	return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
}

// PrintBanner выводит заголовок приложения с версией.
func PrintBanner() {
	banner := `
 ____             ____
|  _ \  ___   ___/ ___|___  _ __ ___  _ __   ___  ___  ___ _ __
| | | |/ _ \ / __| |   / _ \| '_ ' _ \| '_ \ / _ \/ __|/ _ \ '__|
| |_| | (_) | (__| |__| (_) | | | | | | |_) | (_) \__ \  __/ |
|____/ \___/ \___|\____\___/|_| |_| |_| .__/ \___/|___/\___|_| %s
                                      |_|
Document composition and rendering service
%s
----------------------------------------------------------------
`
	colorReset := "\033[0m"

	colorYellow := "\033[33m"
	colorBlue := "\033[34m"

	formattedVersion := version
	if version == "DEV" {
		formattedVersion = colorYellow + version + colorReset
	}

	fmt.Printf(banner, formattedVersion, colorBlue+"https://aisa.ru"+colorReset)
}
