package editor

import (
	"io"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	ugcPolicy = bluemonday.UGCPolicy()
	spaceReg  = regexp.MustCompile(`[ \t\r\n\f]+`)

	headingTags    = tagSet("h1", "h2", "h3", "h4", "h5", "h6")
	containerTags  = tagSet("div", "section", "article", "blockquote", "ul", "ol", "li")
	textBlockTags  = tagSet("p", "blockquote", "li", "div", "section", "article", "h1", "h2", "h3", "h4", "h5", "h6")
	blockLevelTags = tagSet("p", "pre", "hr", "div", "section", "article", "blockquote", "ul", "ol", "li", "h1", "h2", "h3", "h4", "h5", "h6")
)

func tagSet(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, tag := range tags {
		m[tag] = true
	}
	return m
}

// ParseDocument строит документ из HTML. Разметка предварительно очищается политикой UGC.
//
// Соответствие блоков:
//   - p, h1-h6, blockquote, li - текст, <br> становится переносом строки, заголовки жирные
//   - pre - текст без переноса по ширине
//   - img - изображение
//   - hr - явный перенос строки
//
// Опции opts применяются к каждому текстовому элементу перед опциями, полученными из разметки.
func ParseDocument(r io.Reader, opts ...TextOption) (*Document, error) {
	sanitized := ugcPolicy.SanitizeReader(r)

	rootNode, err := html.Parse(sanitized)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	body := getBody(rootNode)
	if body == nil {
		return doc, nil
	}
	p := htmlParser{doc: doc, base: opts}
	p.parseBlocks(body)
	return doc, nil
}

type htmlParser struct {
	doc  *Document
	base []TextOption
}

func (p *htmlParser) newText(content string, opts ...TextOption) Text {
	all := make([]TextOption, 0, len(p.base)+len(opts))
	all = append(all, p.base...)
	return NewText(content, append(all, opts...)...)
}

func (p *htmlParser) parseBlocks(root *html.Node) {
	var inline []*html.Node
	flushInline := func() {
		if len(inline) > 0 {
			p.addAll(p.parseTextRuns(inline, false))
			inline = nil
		}
	}

	for el := root.FirstChild; el != nil; el = el.NextSibling {
		if el.Type == html.TextNode || (el.Type == html.ElementNode && !blockLevelTags[el.Data] && el.Data != "img") {
			inline = append(inline, el)
			continue
		}
		if el.Type != html.ElementNode {
			continue
		}
		flushInline()

		switch {
		case el.Data == "pre":
			if text := nodeText(el); strings.TrimSpace(text) != "" {
				p.doc.Add(p.newText(strings.TrimSuffix(text, "\n"), WithoutWrap()))
			}
		case el.Data == "img":
			if img := getImage(el); img != nil {
				p.doc.Add(*img)
			}
		case el.Data == "hr":
			p.doc.Add(NewLine{})
		case containerTags[el.Data] && hasBlockChild(el):
			p.parseBlocks(el)
		case textBlockTags[el.Data]:
			p.addAll(p.parseTextRuns(children(el), headingTags[el.Data]))
		}
	}
	flushInline()
}

type textRun struct {
	text      string
	bold      bool
	italic    bool
	underline bool
}

// parseTextRuns собирает текст блока. Изображения внутри блока разрывают текст на части.
func (p *htmlParser) parseTextRuns(nodes []*html.Node, heading bool) []Element {
	var out []Element
	var runs []textRun

	flush := func() {
		if t, ok := p.buildText(runs, heading); ok {
			out = append(out, t)
		}
		runs = nil
	}

	var walk func(n *html.Node, style textRun)
	walk = func(n *html.Node, style textRun) {
		switch n.Type {
		case html.TextNode:
			style.text = spaceReg.ReplaceAllString(n.Data, " ")
			runs = append(runs, style)
			return
		case html.ElementNode:
		default:
			return
		}

		switch n.Data {
		case "br":
			runs = append(runs, textRun{text: "\n"})
			return
		case "img":
			flush()
			if img := getImage(n); img != nil {
				out = append(out, *img)
			}
			return
		case "strong", "b":
			style.bold = true
		case "em", "i":
			style.italic = true
		case "u", "ins":
			style.underline = true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, style)
		}
	}

	for _, n := range nodes {
		walk(n, textRun{})
	}
	flush()
	return out
}

// buildText объединяет фрагменты в один текстовый элемент.
// Стиль элемента - стили, общие для всех непустых фрагментов.
func (p *htmlParser) buildText(runs []textRun, heading bool) (Text, bool) {
	var sb strings.Builder
	bold, italic, underline := true, true, true
	nonBlank := false

	for _, run := range runs {
		sb.WriteString(run.text)
		if strings.TrimSpace(run.text) == "" {
			continue
		}
		nonBlank = true
		bold = bold && run.bold
		italic = italic && run.italic
		underline = underline && run.underline
	}
	if !nonBlank {
		return Text{}, false
	}

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	opts := []TextOption{}
	if bold || heading {
		opts = append(opts, WithBold())
	}
	if italic {
		opts = append(opts, WithItalic())
	}
	if underline {
		opts = append(opts, WithUnderline())
	}
	return p.newText(strings.Join(lines, "\n"), opts...), true
}

func getImage(el *html.Node) *Image {
	if el.Type != html.ElementNode || el.Data != "img" {
		return nil
	}
	src := getAttrValue("src", el.Attr)
	if src == "" {
		return nil
	}
	img := NewImage(src)
	return &img
}

func (p *htmlParser) addAll(elements []Element) {
	for _, el := range elements {
		p.doc.Add(el)
	}
}

func children(root *html.Node) []*html.Node {
	var out []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func hasBlockChild(root *html.Node) bool {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockLevelTags[c.Data] {
			return true
		}
	}
	return false
}

func nodeText(root *html.Node) string {
	var sb strings.Builder
	iterNodes(root, func(child *html.Node) bool {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
		return false
	})
	return sb.String()
}

func findElementByTagName(rootNode *html.Node, tagName string) *html.Node {
	var el *html.Node
	iterNodes(rootNode, func(child *html.Node) bool {
		if el != nil {
			return true
		}
		if child.Type == html.ElementNode && child.Data == tagName {
			el = child
			return true
		}
		return false
	})
	return el
}

func getBody(rootNode *html.Node) *html.Node {
	return findElementByTagName(rootNode, "body")
}

func iterNodes(node *html.Node, f func(child *html.Node) bool) {
	if f(node) {
		return
	}
	for p := node.FirstChild; p != nil; p = p.NextSibling {
		iterNodes(p, f)
	}
}

func getAttrValue(key string, attrs []html.Attribute) string {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
