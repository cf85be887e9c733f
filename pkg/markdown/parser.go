package markdown

import "strings"

type BlockKind int

const (
	BlockParagraph BlockKind = iota + 1
	BlockHeading
	BlockQuote
)

// Block is one top level element. Paragraphs keep one inline sequence per
// source line; headings and quotes have exactly one.
type Block struct {
	Kind  BlockKind
	Level int
	Lines [][]Inline
}

type InlineKind int

const (
	InlineText InlineKind = iota + 1
	InlineStrong
	InlineEmphasis
	InlineLink
)

type Inline struct {
	Kind     InlineKind
	Text     string
	URL      string
	Children []Inline
}

// Document is a parsed Markdown source.
type Document struct {
	Metadata Metadata
	Blocks   []Block
}

// Parse strips the frontmatter of src and parses the rest.
func Parse(src string) *Document {
	meta, body := StripFrontMatter(src)
	return &Document{
		Metadata: meta,
		Blocks:   parseBlocks(tokenize(body)),
	}
}

func parseBlocks(tokens []token) []Block {
	var blocks []Block
	var para *Block

	flush := func() {
		if para != nil {
			blocks = append(blocks, *para)
			para = nil
		}
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokenBlank:
			flush()

		case tokenHeading:
			flush()
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: tok.level,
				Lines: [][]Inline{parseInline(tok.text)},
			})

		case tokenQuote:
			flush()
			blocks = append(blocks, Block{
				Kind:  BlockQuote,
				Lines: [][]Inline{parseInline(tok.text)},
			})

		case tokenText:
			if para == nil {
				para = &Block{Kind: BlockParagraph}
			}
			para.Lines = append(para.Lines, parseInline(tok.text))
		}
	}
	flush()

	return blocks
}

// parseInline splits s into text, strong, emphasis and link spans. Delimiters
// are matched non-greedily; an unmatched delimiter stays literal text.
func parseInline(s string) []Inline {
	var nodes []Inline
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			nodes = append(nodes, Inline{Kind: InlineText, Text: buf.String()})
			buf.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch s[i] {
		case '*':
			if strings.HasPrefix(s[i:], "**") {
				if end := strings.Index(s[i+2:], "**"); end > 0 {
					flush()
					nodes = append(nodes, Inline{
						Kind:     InlineStrong,
						Children: parseInline(s[i+2 : i+2+end]),
					})
					i += end + 4
					continue
				}
				buf.WriteString("**")
				i += 2
				continue
			}

			if end := strings.IndexByte(s[i+1:], '*'); end > 0 {
				flush()
				nodes = append(nodes, Inline{
					Kind:     InlineEmphasis,
					Children: parseInline(s[i+1 : i+1+end]),
				})
				i += end + 2
				continue
			}
			buf.WriteByte('*')
			i++

		case '[':
			if text, url, n, ok := scanLink(s[i:]); ok {
				flush()
				nodes = append(nodes, Inline{
					Kind:     InlineLink,
					URL:      url,
					Children: parseInline(text),
				})
				i += n
				continue
			}
			buf.WriteByte('[')
			i++

		default:
			buf.WriteByte(s[i])
			i++
		}
	}
	flush()

	return nodes
}

// scanLink matches "[text](url)" at the start of s and returns the consumed length.
func scanLink(s string) (text, url string, n int, ok bool) {
	closeText := strings.IndexByte(s, ']')
	if closeText < 0 || closeText+1 >= len(s) || s[closeText+1] != '(' {
		return "", "", 0, false
	}

	rest := s[closeText+2:]
	closeURL := strings.IndexByte(rest, ')')
	if closeURL < 0 {
		return "", "", 0, false
	}

	return s[1:closeText], rest[:closeURL], closeText + 2 + closeURL + 1, true
}
