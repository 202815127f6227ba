// Package export converts chat transcripts saved as HTML pages back into
// plain text suitable for the parser.
package export

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// skipped elements contribute no transcript text
var skipTags = map[string]struct{}{
	"script": {},
	"style":  {},
	"head":   {},
}

// HTMLToText extracts the text content of an HTML document, inserting line
// breaks at block boundaries so message lines stay separated.
func HTMLToText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skipTags[n.Data]; skip {
				return
			}
			if n.Data == "br" {
				buf.WriteByte('\n')
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteByte('\n')
		}
	}
	walk(doc)

	return normalize(buf.String()), nil
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// normalize trims each line and drops runs of blank lines.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
