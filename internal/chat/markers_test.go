package chat

import (
	"strings"
	"testing"
)

func TestResolveMarkers_TwoIndependentMarkers(t *testing.T) {
	citations := []Citation{
		{ID: 1, Text: "first fragment", Page: 1},
		{ID: 2, Text: "second fragment", Page: 2},
	}
	segs := ResolveMarkers("growth [1][2]", citations)

	var resolved []Segment
	for _, s := range segs {
		if s.Citation != nil {
			resolved = append(resolved, s)
		}
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 activatable markers, got %d", len(resolved))
	}
	if resolved[0].Text != "[1]" || resolved[0].Citation.ID != 1 {
		t.Errorf("marker 0: got text %q citation %d", resolved[0].Text, resolved[0].Citation.ID)
	}
	if resolved[1].Text != "[2]" || resolved[1].Citation.ID != 2 {
		t.Errorf("marker 1: got text %q citation %d", resolved[1].Text, resolved[1].Citation.ID)
	}

	if segs[0].Text != "growth " || segs[0].Citation != nil {
		t.Errorf("expected leading plain text segment, got %+v", segs[0])
	}
}

func TestResolveMarkers_UnresolvedMarkerStaysLiteral(t *testing.T) {
	segs := ResolveMarkers("see [9] for details", nil)

	for _, s := range segs {
		if s.Citation != nil {
			t.Fatalf("expected no activatable segments, got %+v", s)
		}
	}
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteString(s.Text)
	}
	if sb.String() != "see [9] for details" {
		t.Errorf("expected content preserved verbatim, got %q", sb.String())
	}
}

func TestResolveMarkers_MixedResolvedAndUnresolved(t *testing.T) {
	citations := []Citation{{ID: 1, Text: "fragment", Page: 4}}
	segs := ResolveMarkers("a [1] b [7] c", citations)

	var activatable int
	var sb strings.Builder
	for _, s := range segs {
		if s.Citation != nil {
			activatable++
		}
		sb.WriteString(s.Text)
	}
	if activatable != 1 {
		t.Errorf("expected 1 activatable marker, got %d", activatable)
	}
	if sb.String() != "a [1] b [7] c" {
		t.Errorf("expected full content preserved, got %q", sb.String())
	}
}

func TestResolveMarkers_NoMarkers(t *testing.T) {
	segs := ResolveMarkers("plain content", nil)
	if len(segs) != 1 || segs[0].Text != "plain content" || segs[0].Citation != nil {
		t.Errorf("expected single plain segment, got %+v", segs)
	}
}

func TestRenderHTML_MarkdownAndSanitization(t *testing.T) {
	html, err := RenderHTML("some **bold** text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected markdown emphasis rendered, got %q", html)
	}

	html, err = RenderHTML(`click <script>alert("x")</script> here`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("expected script stripped, got %q", html)
	}
}
