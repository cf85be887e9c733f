package markdown

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

const (
	ClassParagraph  = "my-4 leading-relaxed"
	classBlockquote = "border-l-4 border-gray-300 pl-4 italic my-4 text-gray-700"
	classLink       = "text-blue-600 hover:underline"
)

var headingClasses = map[int]string{
	1: "text-4xl font-bold mt-10 mb-4",
	2: "text-3xl font-bold mt-8 mb-3",
	3: "text-2xl font-bold mt-6 mb-2",
}

var allowedSchemes = map[string]bool{
	"":       true,
	"http":   true,
	"https":  true,
	"mailto": true,
}

// HTML renders the document.
func (x *Document) HTML() string {
	return EnsureParagraph(renderBlocks(x.Blocks))
}

// Convert parses src and renders it in one step.
func Convert(src string) (string, Metadata) {
	doc := Parse(src)
	return doc.HTML(), doc.Metadata
}

var recognizedTag = regexp.MustCompile(`<(h[1-6]|blockquote|strong|em|a|p)[\s>]`)

// EnsureParagraph wraps s in a paragraph when it contains none of the
// recognized block or inline tags. Applying it twice changes nothing.
func EnsureParagraph(s string) string {
	if recognizedTag.MatchString(s) {
		return s
	}
	return fmt.Sprintf(`<p class="%s">%s</p>`, ClassParagraph, s)
}

func renderBlocks(blocks []Block) string {
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, renderBlock(block))
	}
	return strings.Join(out, "\n")
}

func renderBlock(block Block) string {
	switch block.Kind {
	case BlockHeading:
		return fmt.Sprintf(`<h%d class="%s">%s</h%d>`,
			block.Level, headingClasses[block.Level], renderLines(block.Lines), block.Level)

	case BlockQuote:
		return fmt.Sprintf(`<blockquote class="%s">%s</blockquote>`, classBlockquote, renderLines(block.Lines))

	default:
		return fmt.Sprintf(`<p class="%s">%s</p>`, ClassParagraph, renderLines(block.Lines))
	}
}

func renderLines(lines [][]Inline) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, renderInline(line))
	}
	return strings.Join(out, "<br>")
}

func renderInline(nodes []Inline) string {
	var b strings.Builder
	for _, node := range nodes {
		switch node.Kind {
		case InlineText:
			b.WriteString(html.EscapeString(node.Text))
		case InlineStrong:
			b.WriteString("<strong>" + renderInline(node.Children) + "</strong>")
		case InlineEmphasis:
			b.WriteString("<em>" + renderInline(node.Children) + "</em>")
		case InlineLink:
			fmt.Fprintf(&b, `<a href="%s" class="%s" target="_blank">%s</a>`,
				html.EscapeString(safeURL(node.URL)), classLink, renderInline(node.Children))
		}
	}
	return b.String()
}

// safeURL drops ASCII control characters, which browsers ignore inside URLs,
// and returns "#" for anything but http, https, mailto and relative URLs.
func safeURL(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	u, err := url.Parse(cleaned)
	if err != nil || !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "#"
	}
	return cleaned
}
