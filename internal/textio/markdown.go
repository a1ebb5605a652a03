package textio

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(&frontmatter.Extender{}),
)

// FromMarkdown extracts plain text from Markdown source. Front matter,
// link targets and code fences are dropped; inline markup is unwrapped.
func FromMarkdown(source []byte) (string, error) {
	reader := gmtext.NewReader(source)
	doc := markdown.Parser().Parse(reader)

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// Separate blocks so sentences do not run together.
			if _, ok := n.(*ast.Paragraph); ok {
				b.WriteString("\n")
			}
			if _, ok := n.(*ast.Heading); ok {
				b.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			// Keep alt text, drop the target.
			return ast.WalkContinue, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walking markdown ast: %w", err)
	}

	return strings.TrimSpace(b.String()), nil
}
