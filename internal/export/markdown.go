// Package export renders a quote for consumption outside the editor:
// Markdown fields to HTML for the share page, and the whole document
// to DOCX for sending to clients.
package export

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	xhtml "golang.org/x/net/html"
)

// RenderMarkdown converts a Markdown field (quote notes, section
// descriptions) to HTML. On a conversion failure the raw text is
// escaped and returned as-is rather than dropped.
func RenderMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}
	return buf.String()
}

// blockTags are elements that imply a line break when flattening.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// StripTags flattens an HTML fragment to plain text, inserting line
// breaks at block boundaries. Unparseable input is returned verbatim.
func StripTags(fragment string) string {
	root, err := xhtml.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == xhtml.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(root)

	// Collapse the blank runs left behind by nested blocks.
	lines := strings.Split(b.String(), "\n")
	var out []string
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}

// PlainText renders a Markdown field straight to plain text.
func PlainText(src string) string {
	return StripTags(RenderMarkdown(src))
}
