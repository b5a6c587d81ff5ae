package tiptap

import (
	"log/slog"

	"github.com/aisa-it/doccomposer/internal/doccomposer/editor/edtypes"
)

type markSet struct {
	bold      bool
	italic    bool
	underline bool
}

// parseMarks собирает форматирование (marks) текстовой ноды.
func parseMarks(marks []TipTapMark) markSet {
	var s markSet
	for _, mark := range marks {
		switch mark.Type {
		case markBold:
			s.bold = true
		case markItalic:
			s.italic = true
		case markUnderline:
			s.underline = true
		default:
			slog.Debug("Unknown mark type", "type", mark.Type)
		}
	}
	return s
}

func (s markSet) intersect(o markSet) markSet {
	return markSet{
		bold:      s.bold && o.bold,
		italic:    s.italic && o.italic,
		underline: s.underline && o.underline,
	}
}

func (s markSet) options() []edtypes.TextOption {
	var opts []edtypes.TextOption
	if s.bold {
		opts = append(opts, edtypes.WithBold())
	}
	if s.italic {
		opts = append(opts, edtypes.WithItalic())
	}
	if s.underline {
		opts = append(opts, edtypes.WithUnderline())
	}
	return opts
}

// serializeMarks строит marks по опциям текста.
func serializeMarks(opts edtypes.TextOptions) []TipTapMark {
	var marks []TipTapMark
	if opts.Bold {
		marks = append(marks, TipTapMark{Type: markBold})
	}
	if opts.Italic {
		marks = append(marks, TipTapMark{Type: markItalic})
	}
	if opts.Underline {
		marks = append(marks, TipTapMark{Type: markUnderline})
	}
	return marks
}
