package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML extracts visible text from an HTML document. Script, style
// and noscript subtrees are skipped.
func FromHTML(source []byte) (string, error) {
	doc, err := html.Parse(strings.NewReader(string(source)))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var b strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				b.WriteString(s)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	return strings.TrimSpace(b.String()), nil
}

// FromFile reads path and extracts plain text according to its
// extension. Unknown extensions are treated as plain text.
func FromFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FromMarkdown(source)
	case ".html", ".htm":
		return FromHTML(source)
	default:
		return strings.TrimSpace(string(source)), nil
	}
}
