package chat

import (
	"bytes"
	"regexp"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// markerPattern matches inline citation markers of the literal form [n].
var markerPattern = regexp.MustCompile(`\[(\d+)\]`)

// Segment is one piece of a message body after marker resolution. A
// segment either carries plain text or a resolved, activatable citation
// marker. Markers whose id has no citation in the message stay as text.
type Segment struct {
	Text     string    `json:"text"`
	Citation *Citation `json:"citation,omitempty"`
}

// ResolveMarkers splits content into segments, resolving each [n] marker
// against the given citations by id.
func ResolveMarkers(content string, citations []Citation) []Segment {
	byID := make(map[int]*Citation, len(citations))
	for i := range citations {
		byID[citations[i].ID] = &citations[i]
	}

	var segs []Segment
	last := 0
	for _, loc := range markerPattern.FindAllStringSubmatchIndex(content, -1) {
		id, err := strconv.Atoi(content[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		c, ok := byID[id]
		if !ok {
			// Unresolved marker: leave it inside the surrounding text.
			continue
		}
		if last < loc[0] {
			segs = append(segs, Segment{Text: content[last:loc[0]]})
		}
		segs = append(segs, Segment{Text: content[loc[0]:loc[1]], Citation: c})
		last = loc[1]
	}
	if last < len(content) {
		segs = append(segs, Segment{Text: content[last:]})
	}
	return segs
}

var sanitizer = bluemonday.UGCPolicy()

// RenderHTML converts markdown message content to sanitized HTML.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}
