package markdown

import "strings"

type tokenKind int

const (
	tokenBlank tokenKind = iota
	tokenText
	tokenHeading
	tokenQuote
)

type token struct {
	kind  tokenKind
	level int
	text  string
}

const maxHeadingLevel = 3

// tokenize classifies every line of body.
func tokenize(body string) []token {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	lines := strings.Split(body, "\n")
	tokens := make([]token, 0, len(lines))
	for _, line := range lines {
		tokens = append(tokens, classifyLine(line))
	}
	return tokens
}

func classifyLine(line string) token {
	if strings.TrimSpace(line) == "" {
		return token{kind: tokenBlank}
	}

	if level := headingLevel(line); level > 0 {
		return token{kind: tokenHeading, level: level, text: line[level+1:]}
	}

	if strings.HasPrefix(line, "> ") {
		return token{kind: tokenQuote, text: line[2:]}
	}

	return token{kind: tokenText, text: line}
}

// headingLevel returns the number of leading '#' when they are followed by a
// space and there are at most three of them, otherwise 0.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > maxHeadingLevel || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}
