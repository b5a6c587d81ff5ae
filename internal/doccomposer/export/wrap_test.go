package export

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "hello world", 80, "hello world"},
		{"two words", "hello world", 5, "hello\nworld"},
		{"exact width", "ab cd", 5, "ab cd"},
		{"long word alone", "a verylongword b", 4, "a\nverylongword\nb"},
		{"first word too long", "verylongword b", 4, "verylongword\nb"},
		{"empty", "", 10, ""},
		{"empty lines kept", "a\n\nb", 10, "a\n\nb"},
		{"lines wrapped independently", "aa bb\ncc dd", 2, "aa\nbb\ncc\ndd"},
		{"whitespace only", "   ", 10, ""},
		{"disabled", "hello world", 0, "hello world"},
		{"negative disables", "hello world", -3, "hello world"},
		{"wide runes", "日本 語", 4, "日本\n語"},
		{"leading tab kept", "\tindent me", 80, "\tindent me"},
		{"leading spaces kept", "  two leading", 80, "  two leading"},
		{"trailing tab kept", "tab after\t", 80, "tab after\t"},
		{"trailing spaces dropped", "hello world  ", 80, "hello world"},
		{"indent stays with long word", "  verylongword", 4, "  verylongword"},
		{"tab wrapped with word", "\tab cd", 3, "\tab\ncd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrapParagraph(t *testing.T) {
	text := "This is a very long paragraph that will automatically wrap into multiple lines based on width. The rendering logic is strong and isolated."
	want := "This is a very long paragraph that will\n" +
		"automatically wrap into multiple lines based on\n" +
		"width. The rendering logic is strong and isolated."
	assert.Equal(t, want, Wrap(text, 50))
}

func TestWrapProperties(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a bb ccc dddd eeeee ffffff ggggggg",
		"supercalifragilisticexpialidocious is a word",
		"\tindented line with\ttabs inside",
		"ends with a tab\t",
	}

	for _, text := range texts {
		for width := 1; width <= 20; width++ {
			out := Wrap(text, width)
			for _, line := range strings.Split(out, "\n") {
				if runewidth.StringWidth(line) > width {
					assert.NotContains(t, line, " ", "width %d line %q", width, line)
				}
			}
			var words []string
			for _, line := range strings.Split(out, "\n") {
				words = append(words, strings.Split(line, " ")...)
			}
			assert.Equal(t, strings.Split(text, " "), words, "width %d", width)
		}
	}
}

func TestNormalizeNewLines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", normalizeNewLines("a\r\nb\rc", true))
	assert.Equal(t, "a\n\nb", normalizeNewLines("a\r\n\r\nb", true))
	assert.Equal(t, "a b c", normalizeNewLines("a\r\n\nb\rc", false))
	assert.Equal(t, "plain", normalizeNewLines("plain", false))
}
