// Package markdown converts the small Markdown subset used by the about
// section into HTML.
//
// Supported syntax: a leading "---" frontmatter block (parsed, not rendered),
// "#", "##" and "###" headings, "> " blockquotes, **strong**, *emphasis*,
// [text](url) links, blank-line separated paragraphs and single newlines as
// line breaks. Everything else is plain text.
//
// Conversion runs in three stages: lines are classified into block tokens,
// blocks and their inline spans are parsed into a Document, and the Document
// is rendered with the site's CSS classes.
package markdown
