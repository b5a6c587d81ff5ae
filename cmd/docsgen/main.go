// Генерация документации об ошибках API в формате Markdown.
// Создает таблицу с кодами ошибок, HTTP-кодами и сообщениями на двух языках.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/aisa-it/doccomposer/internal/doccomposer/apierrors"
)

func main() {
	outputMd := flag.String("out", "api_error.md", "Path to output md")
	flag.Parse()

	slog.Info("Generate api errors docs", "out", *outputMd, "errors", len(apierrors.All))

	ff, err := os.Create(*outputMd)
	if err != nil {
		slog.Error("Create output file", "err", err)
		os.Exit(1)
	}
	defer ff.Close()

	if err := writeDocs(ff, apierrors.All); err != nil {
		slog.Error("Generate docs fail", "err", err)
		return
	}
	slog.Info("Docs generated")
}

func writeDocs(w io.Writer, errs []apierrors.DefinedError) error {
	return md.NewMarkdown(w).
		H1("Перечень кодов ошибок").
		PlainText("Данный раздел посвящен описанию возможных ошибок от сервера.").
		CustomTable(md.TableSet{
			Header: []string{"Код", "HTTP код", "Сообщение", "Сообщение на русском"},
			Rows:   getRows(errs),
		}, md.TableOptions{
			AutoWrapText: false,
		}).Build()
}

// getRows строит строки таблицы. Плейсхолдеры форматирования остаются в сообщениях как есть.
func getRows(errs []apierrors.DefinedError) [][]string {
	rows := make([][]string, 0, len(errs))
	for _, e := range errs {
		status := e.HTTPStatus()
		rows = append(rows, []string{
			md.Bold(strconv.Itoa(e.Code)),
			fmt.Sprintf("%d %s", status, md.Italic(http.StatusText(status))),
			md.Code(e.Err),
			md.Code(e.RuErr),
		})
	}
	return rows
}
