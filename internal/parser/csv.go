package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/aliquigan/invoicegl/internal/document"
)

// CSVParser handles CSV invoice exports. Every record becomes a table
// row, and the flattened records double as text lines so the totals text
// pass can see them.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &document.Document{Title: titleFor(filename)}
	if len(records) == 0 {
		return doc, nil
	}

	table := document.Table{}
	for _, record := range records {
		row := make(document.Row, len(record))
		for i, cell := range record {
			row[i] = document.TextCell(cell)
		}
		table.Rows = append(table.Rows, row)
		if flat := strings.TrimSpace(strings.Join(record, " ")); flat != "" {
			doc.Lines = append(doc.Lines, flat)
		}
	}
	doc.Tables = []document.Table{table}

	return doc, nil
}
