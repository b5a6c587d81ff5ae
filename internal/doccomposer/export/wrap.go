package export

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var lineBreaksReg = regexp.MustCompile(`(\r\n|\r|\n)+`)

// normalizeNewLines приводит переносы строк к "\n".
// Если переносы не сохраняются, каждая серия переносов заменяется одним пробелом.
func normalizeNewLines(text string, preserve bool) string {
	if !preserve {
		return lineBreaksReg.ReplaceAllString(text, " ")
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Wrap переносит текст по словам так, чтобы строки не превышали width колонок.
// Каждая строка входа обрабатывается отдельно, пустые строки сохраняются.
// Слово длиннее width не разбивается и занимает строку целиком.
// Ширина считается в колонках терминала (go-runewidth), а не в символах:
// широкие руны, например CJK, занимают две колонки.
// width <= 0 отключает перенос.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, wrapLine(line, width)...)
	}
	return strings.Join(wrapped, "\n")
}

func wrapLine(line string, width int) []string {
	var out []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Split(line, " ") {
		wordWidth := runewidth.StringWidth(word)
		if current.Len() > 0 && currentWidth+wordWidth > width {
			// буфер из одних пробелов остается отступом следующего слова
			if flushed := strings.TrimRight(current.String(), " "); flushed != "" {
				out = append(out, flushed)
				current.Reset()
				currentWidth = 0
			}
		}
		current.WriteString(word)
		current.WriteByte(' ')
		currentWidth += wordWidth + 1
	}

	return append(out, strings.TrimRight(current.String(), " "))
}
