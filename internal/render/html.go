package render

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/rgould/citeview/internal/textlayer"
)

// HTMLRenderer handles HTML files. Each <h1> starts a new page; headings
// and the text blocks under them become the page's text runs.
type HTMLRenderer struct{}

func (h *HTMLRenderer) Render(path string, scale float64) (*textlayer.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	out := &textlayer.Document{Title: titleFromFilename(path)}
	if title := findTitle(doc); title != "" {
		out.Title = title
	}

	var pages [][]string
	var current []string
	var currentText strings.Builder

	flushText := func() {
		if t := strings.TrimSpace(currentText.String()); t != "" {
			current = append(current, t)
		}
		currentText.Reset()
	}
	flushPage := func() {
		flushText()
		if len(current) > 0 {
			pages = append(pages, current)
			current = nil
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			case "h1":
				flushPage()
				if t := textContent(n); t != "" {
					current = append(current, t)
				}
				return
			case "h2", "h3", "h4", "h5", "h6":
				flushText()
				if t := textContent(n); t != "" {
					current = append(current, t)
				}
				return
			case "p", "li", "td", "pre", "blockquote":
				flushText()
				if t := textContent(n); t != "" {
					current = append(current, t)
				}
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if currentText.Len() > 0 {
					currentText.WriteByte(' ')
				}
				currentText.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	flushPage()

	for i, runs := range pages {
		out.Pages = append(out.Pages, pageFromRuns(i+1, scale, runs))
	}
	return out, nil
}

func findTitle(doc *html.Node) string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			title = strings.TrimSpace(textContent(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
