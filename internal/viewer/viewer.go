// Package viewer owns the rendered document, the zoom level, and the
// locate/highlight state. Locate is the one operation with real logic:
// clear existing highlights, scan every rendered text run, mark matches,
// and hand the first match back as the scroll target.
package viewer

import (
	"sync"

	"github.com/rgould/citeview/internal/render"
	"github.com/rgould/citeview/internal/textlayer"
)

// Zoom bounds and step, in tenths of the base scale. Working in tenths
// keeps six steps from 1.0 landing exactly on 2.0 and 0.5.
const (
	minScaleTenths  = 5
	maxScaleTenths  = 20
	scaleStepTenths = 1
)

// LocateResult reports the outcome of a locate call. Matches is the new
// highlight set; ScrollTo is the first match in scan order, nil when
// nothing matched.
type LocateResult struct {
	Found    bool               `json:"found"`
	Matches  []textlayer.RunRef `json:"matches"`
	ScrollTo *textlayer.RunRef  `json:"scroll_to,omitempty"`
}

// Viewer holds one open document. A locate call is clear-then-scan and
// must run to completion before the next may begin; the mutex serializes
// callers.
type Viewer struct {
	mu sync.Mutex

	renderOpts render.Options

	path        string
	renderer    render.Renderer
	doc         *textlayer.Document
	scaleTenths int
	generation  int
	highlights  []textlayer.RunRef
}

// New creates a Viewer at scale 1.0 with no document open.
func New(opts render.Options) *Viewer {
	return &Viewer{renderOpts: opts, scaleTenths: 10}
}

// Open renders the file at the current scale and installs it, discarding
// any previous document and highlight state.
func (v *Viewer) Open(path string) (*textlayer.Document, error) {
	r, err := render.ForFile(path, v.renderOpts)
	if err != nil {
		return nil, err
	}

	for {
		v.mu.Lock()
		tenths := v.scaleTenths
		v.mu.Unlock()

		doc, err := r.Render(path, float64(tenths)/10)
		if err != nil {
			return nil, err
		}

		v.mu.Lock()
		// A concurrent zoom may have moved the scale while we rendered;
		// installing that document would leave geometry out of step.
		if v.scaleTenths != tenths {
			v.mu.Unlock()
			continue
		}
		v.path = path
		v.renderer = r
		v.doc = doc
		v.generation++
		v.highlights = nil
		v.mu.Unlock()
		return doc, nil
	}
}

// Locate searches the rendered text layers for a literal fragment. It
// clears all existing highlights, then marks every run whose text contains
// the fragment (case-insensitive). Empty input is a no-op returning not
// found, leaving existing highlights untouched.
func (v *Viewer) Locate(text string) LocateResult {
	v.mu.Lock()
	defer v.mu.Unlock()

	if text == "" || v.doc == nil {
		return LocateResult{}
	}

	v.highlights = nil
	res := Scan(v.doc.Pages, text)
	v.highlights = res.Matches

	return LocateResult{
		Found:    res.Found,
		Matches:  res.Matches,
		ScrollTo: res.First,
	}
}

// ZoomIn raises the scale one step, clamped at 2.0. A scale change
// re-renders every page, which discards the previous text layers and with
// them the highlight set.
func (v *Viewer) ZoomIn() (float64, error) {
	return v.zoom(scaleStepTenths)
}

// ZoomOut lowers the scale one step, clamped at 0.5.
func (v *Viewer) ZoomOut() (float64, error) {
	return v.zoom(-scaleStepTenths)
}

func (v *Viewer) zoom(deltaTenths int) (float64, error) {
	v.mu.Lock()

	next := v.scaleTenths + deltaTenths
	if next < minScaleTenths {
		next = minScaleTenths
	}
	if next > maxScaleTenths {
		next = maxScaleTenths
	}
	if next == v.scaleTenths {
		scale := float64(next) / 10
		v.mu.Unlock()
		return scale, nil
	}
	v.scaleTenths = next
	scale := float64(next) / 10
	path := v.path
	renderer := v.renderer
	v.mu.Unlock()

	if renderer == nil {
		return scale, nil
	}

	doc, err := renderer.Render(path, scale)
	if err != nil {
		return scale, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	// A later zoom may have moved the scale again while we rendered; its
	// own render wins, and this stale document must not be installed.
	if v.scaleTenths != next {
		return float64(v.scaleTenths) / 10, nil
	}
	v.doc = doc
	v.generation++
	v.highlights = nil
	return scale, nil
}

// Scale returns the current zoom scale.
func (v *Viewer) Scale() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.scaleTenths) / 10
}

// Generation returns the render generation. Run references are only valid
// within the generation they were produced for.
func (v *Viewer) Generation() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.generation
}

// Document returns the open document, or nil.
func (v *Viewer) Document() *textlayer.Document {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.doc
}

// Highlights returns the current highlight set.
func (v *Viewer) Highlights() []textlayer.RunRef {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]textlayer.RunRef, len(v.highlights))
	copy(out, v.highlights)
	return out
}
