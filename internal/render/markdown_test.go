package render

import "testing"

func TestMarkdownRenderer_TopHeadingsBecomePages(t *testing.T) {
	input := "# Overview\n\nThe year in summary.\n\n# Financials\n\nRevenue grew.\n\nEBITDA improved.\n"
	r := &MarkdownRenderer{}
	doc, err := r.Render(writeTemp(t, "report.md", input), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Overview" {
		t.Errorf("expected title from first heading, got %q", doc.Title)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}

	p1 := doc.Pages[0]
	if len(p1.Runs) != 2 || p1.Runs[0].Text != "Overview" || p1.Runs[1].Text != "The year in summary." {
		t.Errorf("unexpected page 1 runs: %+v", p1.Runs)
	}

	p2 := doc.Pages[1]
	if len(p2.Runs) != 3 {
		t.Fatalf("expected 3 runs on page 2, got %d", len(p2.Runs))
	}
	if p2.Runs[0].Text != "Financials" {
		t.Errorf("expected heading run first, got %q", p2.Runs[0].Text)
	}
}

func TestMarkdownRenderer_NoHeadings(t *testing.T) {
	input := "Just a paragraph.\n\nAnd another."
	r := &MarkdownRenderer{}
	doc, err := r.Render(writeTemp(t, "plain.md", input), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if len(doc.Pages[0].Runs) != 2 {
		t.Errorf("expected 2 runs, got %+v", doc.Pages[0].Runs)
	}
	if doc.Title != "plain" {
		t.Errorf("expected title from filename, got %q", doc.Title)
	}
}

func TestMarkdownRenderer_SubheadingsStayOnPage(t *testing.T) {
	input := "# Report\n\nIntro.\n\n## Detail\n\nBody text.\n"
	r := &MarkdownRenderer{}
	doc, err := r.Render(writeTemp(t, "nested.md", input), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
}
