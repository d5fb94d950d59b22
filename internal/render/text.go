package render

import (
	"bufio"
	"os"
	"strings"

	"github.com/rgould/citeview/internal/textlayer"
)

// TextRenderer handles plain text files. Form feeds split pages; blank
// lines split paragraphs, which become the page's text runs.
type TextRenderer struct{}

func (t *TextRenderer) Render(path string, scale float64) (*textlayer.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sb strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &textlayer.Document{Title: titleFromFilename(path)}
	for i, pageText := range strings.Split(sb.String(), "\f") {
		runs := splitParagraphs(pageText)
		if len(runs) == 0 {
			continue
		}
		doc.Pages = append(doc.Pages, pageFromRuns(i+1, scale, runs))
	}
	return doc, nil
}

// splitParagraphs splits text on blank lines, trimming each paragraph and
// dropping whitespace-only ones.
func splitParagraphs(text string) []string {
	var paras []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		p := strings.TrimSpace(strings.Join(current, "\n"))
		if p != "" {
			paras = append(paras, p)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paras
}
