package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rgould/citeview/internal/textlayer"
)

// Renderer turns a document file into rendered pages with text layers at a
// given scale. Re-rendering at a new scale yields fresh pages; callers must
// treat any run references from a previous render as invalid.
type Renderer interface {
	Render(path string, scale float64) (*textlayer.Document, error)
}

// Options tune renderer construction.
type Options struct {
	// PDFFallbackPdftotext enables shelling out to pdftotext when the Go
	// PDF library fails to extract text.
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can display.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
	".csv":  true,
}

// ForFile returns the appropriate renderer for a filename.
func ForFile(filename string, opts Options) (Renderer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextRenderer{}, nil
	case ".md", ".markdown":
		return &MarkdownRenderer{}, nil
	case ".html", ".htm":
		return &HTMLRenderer{}, nil
	case ".pdf":
		return &PDFRenderer{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXRenderer{}, nil
	case ".csv":
		return &CSVRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Default page geometry for formats that carry no page dimensions of their
// own (plain text, markdown, html, docx). US letter in points.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// pageFromRuns builds a page whose text layer is the given run texts, with
// default geometry scaled by the render scale.
func pageFromRuns(number int, scale float64, texts []string) textlayer.Page {
	p := textlayer.Page{
		Number: number,
		Width:  defaultPageWidth * scale,
		Height: defaultPageHeight * scale,
	}
	for i, t := range texts {
		p.Runs = append(p.Runs, textlayer.TextRun{Index: i, Text: t})
	}
	return p
}

func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
