package render

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rgould/citeview/internal/textlayer"
)

// MarkdownRenderer handles Markdown files using goldmark. Each top-level
// heading starts a new page; the heading and the blocks under it become
// that page's text runs.
type MarkdownRenderer struct{}

func (m *MarkdownRenderer) Render(path string, scale float64) (*textlayer.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	out := &textlayer.Document{Title: titleFromFilename(path)}

	var pages [][]string
	var current []string

	flushPage := func() {
		if len(current) > 0 {
			pages = append(pages, current)
			current = nil
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			flushPage()
			if title := string(h.Text(src)); title != "" {
				current = append(current, title)
				if out.Title == titleFromFilename(path) {
					out.Title = title
				}
			}
			continue
		}
		if t := extractText(n, src); t != "" {
			current = append(current, t)
		}
	}
	flushPage()

	for i, runs := range pages {
		out.Pages = append(out.Pages, pageFromRuns(i+1, scale, runs))
	}
	return out, nil
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
