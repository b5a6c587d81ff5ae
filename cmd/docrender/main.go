// Утилита командной строки для отрисовки документа из файла TipTap JSON или HTML.
//
// Основные возможности:
//   - Чтение документа из .json или .html файла.
//   - Отрисовка выбранным рендерером и вывод результата.
//   - Сохранение результата в хранилище из конфигурации окружения.
//   - Запись Markdown файла с заголовком.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aisa-it/doccomposer/internal/doccomposer/config"
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor"
	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/tiptap"
	"github.com/aisa-it/doccomposer/internal/doccomposer/export"
	filestorage "github.com/aisa-it/doccomposer/internal/doccomposer/file-storage"
)

// Пример запуска: go run ./cmd/docrender -renderer markdown -md out.md -title "Отчет" doc.json
func main() {
	rendererName := flag.String("renderer", export.DefaultRenderer, "Renderer: "+strings.Join(export.RendererNames(), ", "))
	width := flag.Int("width", editor.DefaultMaxWidth, "Wrap width for imported HTML, 0 disables wrapping")
	save := flag.Bool("save", false, "Save result to storage from DOC_STORAGE config")
	mdOut := flag.String("md", "", "Path to output md")
	title := flag.String("title", "", "Title of output md")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: docrender [flags] <document.json|document.html>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	doc, err := readDocument(flag.Arg(0), *width)
	if err != nil {
		slog.Error("Read document", "file", flag.Arg(0), "err", err)
		os.Exit(1)
	}

	renderer, err := export.NewRenderer(*rendererName)
	if err != nil {
		slog.Error("Select renderer", "renderer", *rendererName, "err", err)
		os.Exit(1)
	}

	var storage editor.Storage
	if *save {
		cfg := config.ReadConfig()
		storage, err = filestorage.NewStorage(cfg, nil)
		if err != nil {
			slog.Error("Init storage", "type", cfg.StorageType, "err", err)
			os.Exit(1)
		}
	}

	ed := editor.NewEditor(doc, renderer, storage)
	out, err := ed.Render()
	if err != nil {
		slog.Error("Render document", "err", err)
		os.Exit(1)
	}
	fmt.Println(out)

	if storage != nil {
		if err := ed.Save(); err != nil {
			slog.Error("Save document", "err", err)
			os.Exit(1)
		}
		slog.Info("Document saved")
	}

	if *mdOut != "" {
		if err := writeMarkdownFile(*mdOut, *title, doc); err != nil {
			slog.Error("Generate md fail", "err", err)
			os.Exit(1)
		}
		slog.Info("Markdown generated", "out", *mdOut)
	}
}

// writeMarkdownFile закрывает файл до возврата, в том числе при ошибке записи.
func writeMarkdownFile(path, title string, doc *editor.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	werr := export.WriteMarkdown(doc, title, f)
	return errors.Join(werr, f.Close())
}

func readDocument(path string, width int) (*editor.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseDocument(f, filepath.Ext(path), width)
}

func parseDocument(r io.Reader, ext string, width int) (*editor.Document, error) {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return editor.ParseDocument(r, editor.WithMaxWidth(width))
	case ".json":
		return tiptap.ParseJSON(r)
	}
	return nil, fmt.Errorf("unsupported document format %q", ext)
}
