package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/rgould/citeview/internal/textlayer"
)

// CSVRenderer handles CSV files. The first record is taken as the header
// row; each data row becomes one "header: cell" text run, grouped into
// pages of at most rowsPerPage runs.
type CSVRenderer struct{}

const rowsPerPage = 20

func (c *CSVRenderer) Render(path string, scale float64) (*textlayer.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &textlayer.Document{Title: titleFromFilename(path)}
	if len(records) == 0 {
		return doc, nil
	}

	headers := records[0]
	rows := make([]string, 0, len(records)-1)
	rows = append(rows, strings.Join(headers, ", "))
	for _, record := range records[1:] {
		rows = append(rows, rowText(headers, record))
	}

	for start := 0; start < len(rows); start += rowsPerPage {
		end := min(start+rowsPerPage, len(rows))
		doc.Pages = append(doc.Pages, pageFromRuns(len(doc.Pages)+1, scale, rows[start:end]))
	}
	return doc, nil
}

func rowText(headers, record []string) string {
	var sb strings.Builder
	for i, cell := range record {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i < len(headers) {
			sb.WriteString(headers[i] + ": ")
		}
		sb.WriteString(cell)
	}
	return sb.String()
}
