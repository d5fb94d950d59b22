package viewer

import (
	"strings"

	"github.com/rgould/citeview/internal/textlayer"
)

// ScanResult is the outcome of a text scan over rendered pages. Matches
// lists every run containing the query, in page order then in-page order,
// each run at most once. First is the scroll target: the first matching
// run in scan order.
type ScanResult struct {
	Found   bool
	Matches []textlayer.RunRef
	First   *textlayer.RunRef
}

// Scan performs a case-insensitive substring search for query over every
// text run of every page. It is a pure function: marking matched runs and
// scrolling the first into view are the caller's concern.
//
// Matching is per-run. A query whose visible text spans a boundary between
// two runs is not found; runs are never concatenated before matching.
func Scan(pages []textlayer.Page, query string) ScanResult {
	if query == "" {
		return ScanResult{}
	}
	needle := strings.ToLower(query)

	var res ScanResult
	for pi := range pages {
		page := &pages[pi]
		for ri := range page.Runs {
			if !strings.Contains(strings.ToLower(page.Runs[ri].Text), needle) {
				continue
			}
			ref := textlayer.RunRef{Page: page.Number, Run: ri}
			res.Matches = append(res.Matches, ref)
			if res.First == nil {
				first := ref
				res.First = &first
			}
		}
	}
	res.Found = res.First != nil
	return res
}
