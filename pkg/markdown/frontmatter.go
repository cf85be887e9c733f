package markdown

import (
	"bufio"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// Metadata is the decoded frontmatter block.
type Metadata struct {
	Title  string
	Fields map[string]any

	// Err is set when the block was found but could not be decoded. The
	// block is stripped from the body anyway.
	Err error
}

// StripFrontMatter removes a leading "---" delimited block from src and
// returns its decoded fields together with the remaining body. src is
// returned unchanged when it has no complete block.
func StripFrontMatter(src string) (Metadata, string) {
	if !hasClosedFrontMatter(src) {
		return Metadata{}, src
	}
	src = strings.TrimLeft(src, " \t\r\n")

	var meta Metadata
	fields := map[string]any{}

	format := frontmatter.NewFormat(frontMatterDelimiter, frontMatterDelimiter, func(data []byte, v any) error {
		if err := yaml.Unmarshal(data, v); err != nil {
			meta.Err = goerr.Wrap(err, "failed to decode frontmatter")
		}
		return nil
	})

	body, err := frontmatter.Parse(strings.NewReader(src), &fields, format)
	if err != nil {
		return Metadata{Err: goerr.Wrap(err, "failed to parse frontmatter")}, src
	}

	meta.Fields = fields
	if title, ok := fields["title"].(string); ok {
		meta.Title = title
	}

	return meta, string(body)
}

func hasClosedFrontMatter(src string) bool {
	scanner := bufio.NewScanner(strings.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), len(src)+1)

	opened := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if !opened {
			if line == "" {
				continue
			}
			if line != frontMatterDelimiter {
				return false
			}
			opened = true
			continue
		}
		if line == frontMatterDelimiter {
			return true
		}
	}
	return false
}
