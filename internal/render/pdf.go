package render

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/rgould/citeview/internal/textlayer"
)

// PDFRenderer handles PDF files. Page geometry comes from pdfcpu; the text
// layer comes from the Go PDF library, falling back to pdftotext if that
// fails and the fallback is enabled.
type PDFRenderer struct {
	FallbackPdftotext bool
}

func (p *PDFRenderer) Render(path string, scale float64) (*textlayer.Document, error) {
	pageCount, dims, err := pdfGeometry(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	pageTexts, err := extractPDFText(path, pageCount)
	if err != nil && p.FallbackPdftotext {
		pageTexts, err = extractPdftotext(path)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	doc := &textlayer.Document{Title: titleFromFilename(path)}
	for i := 0; i < pageCount; i++ {
		page := textlayer.Page{Number: i + 1}
		if i < len(dims) {
			page.Width = dims[i].Width * scale
			page.Height = dims[i].Height * scale
		}
		if i < len(pageTexts) {
			for j, line := range splitLines(pageTexts[i]) {
				page.Runs = append(page.Runs, textlayer.TextRun{Index: j, Text: line})
			}
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// pdfGeometry reads page count and media box dimensions via pdfcpu.
func pdfGeometry(path string) (int, []types.Dim, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return 0, nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		// Geometry is advisory; the text layer is what matters.
		dims = nil
	}
	return ctx.PageCount, dims, nil
}

// extractPDFText pulls per-page plain text with the Go PDF library.
func extractPDFText(path string, pageCount int) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	texts := make([]string, 0, pageCount)
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// extractPdftotext shells out to pdftotext, splitting pages on form feeds.
func extractPdftotext(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return strings.Split(string(out), "\f"), nil
}

// splitLines breaks page text into non-empty trimmed lines, the text runs
// of a PDF page.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
