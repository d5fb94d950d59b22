package textlayer

// Document is a rendered document: an ordered sequence of pages, each
// carrying the text layer produced by the rendering library.
type Document struct {
	Title string `json:"title"` // Document title (from metadata or filename)
	Pages []Page `json:"pages"` // Ordered rendered pages
}

// Page is one rendered surface and its text layer.
type Page struct {
	Number int       `json:"number"` // 1-based page number
	Width  float64   `json:"width"`  // Media box width in points (0 if unknown)
	Height float64   `json:"height"` // Media box height in points (0 if unknown)
	Runs   []TextRun `json:"runs"`   // Ordered text-bearing runs covering the page
}

// TextRun is a single text-bearing node within a page's text layer. The
// rendering library may split visually contiguous text across several runs
// at styling boundaries; runs are never reassembled downstream.
type TextRun struct {
	Index int    `json:"index"` // Position within the page, 0-based
	Text  string `json:"text"`
}

// RunRef identifies a run within a rendered generation of the document.
// Refs from a previous generation are invalid after a re-render.
type RunRef struct {
	Page int `json:"page"` // 1-based page number
	Run  int `json:"run"`  // Run index within the page
}

// PageCount returns the number of rendered pages.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Run resolves a RunRef against the document. Returns nil if the ref does
// not point at an existing run.
func (d *Document) Run(ref RunRef) *TextRun {
	if d == nil {
		return nil
	}
	for i := range d.Pages {
		if d.Pages[i].Number != ref.Page {
			continue
		}
		if ref.Run < 0 || ref.Run >= len(d.Pages[i].Runs) {
			return nil
		}
		return &d.Pages[i].Runs[ref.Run]
	}
	return nil
}
