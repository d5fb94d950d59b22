package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/rgould/citeview/internal/textlayer"
)

// DOCXRenderer handles .docx files. Word stores no fixed pagination, so
// paragraphs are grouped into pages of at most paragraphsPerPage runs.
type DOCXRenderer struct{}

const paragraphsPerPage = 40

func (d *DOCXRenderer) Render(path string, scale float64) (*textlayer.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var paras []string
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if t := strings.TrimSpace(paragraphText(p)); t != "" {
			paras = append(paras, t)
		}
	}

	out := &textlayer.Document{Title: titleFromFilename(path)}
	for start := 0; start < len(paras); start += paragraphsPerPage {
		end := min(start+paragraphsPerPage, len(paras))
		out.Pages = append(out.Pages, pageFromRuns(len(out.Pages)+1, scale, paras[start:end]))
	}
	return out, nil
}

func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
	}
	return sb.String()
}
