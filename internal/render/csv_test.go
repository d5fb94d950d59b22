package render

import (
	"fmt"
	"strings"
	"testing"
)

func TestCSVRenderer_RowsBecomeRuns(t *testing.T) {
	input := "name,city\nAda,London\nGrace,New York\n"
	r := &CSVRenderer{}
	doc, err := r.Render(writeTemp(t, "people.csv", input), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "people" {
		t.Errorf("expected title %q, got %q", "people", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	want := []string{
		"name, city",
		"name: Ada, city: London",
		"name: Grace, city: New York",
	}
	runs := doc.Pages[0].Runs
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(runs))
	}
	for i, w := range want {
		if runs[i].Text != w {
			t.Errorf("run %d: expected %q, got %q", i, w, runs[i].Text)
		}
	}
}

func TestCSVRenderer_PaginatesByRowCount(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id,value\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "%d,v%d\n", i, i)
	}

	r := &CSVRenderer{}
	doc, err := r.Render(writeTemp(t, "big.csv", sb.String()), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 31 rows (header line included) at 20 per page.
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if len(doc.Pages[0].Runs) != 20 {
		t.Errorf("expected 20 runs on page 1, got %d", len(doc.Pages[0].Runs))
	}
	if len(doc.Pages[1].Runs) != 11 {
		t.Errorf("expected 11 runs on page 2, got %d", len(doc.Pages[1].Runs))
	}
}

func TestCSVRenderer_Empty(t *testing.T) {
	r := &CSVRenderer{}
	doc, err := r.Render(writeTemp(t, "empty.csv", ""), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}

func TestCSVRenderer_RaggedRows(t *testing.T) {
	input := "a,b\n1,2,3\n4\n"
	r := &CSVRenderer{}
	doc, err := r.Render(writeTemp(t, "ragged.csv", input), 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runs := doc.Pages[0].Runs
	if runs[1].Text != "a: 1, b: 2, 3" {
		t.Errorf("long row: got %q", runs[1].Text)
	}
	if runs[2].Text != "a: 4" {
		t.Errorf("short row: got %q", runs[2].Text)
	}
}
