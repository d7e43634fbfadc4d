package document

import (
	"strconv"
	"strings"
)

// Document is the parsed form of a source invoice: the running text as
// ordered lines, plus any table regions found in the layout.
type Document struct {
	Title  string  // Document title (from metadata or filename)
	Lines  []string
	Tables []Table
}

// Table is a structured grid of cells extracted from a document page.
type Table struct {
	Rows []Row
	Page int // Source page (0 if N/A)
}

// Row is one line of a table region.
type Row []Cell

// CellKind distinguishes the heterogeneous cell values a table region
// can carry.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a single table cell: absent, numeric, or string.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell builds a string cell, mapping blank strings to CellEmpty.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell builds a numeric cell.
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

// String renders the cell's value for label scans and logging.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return trimFloat(c.Number)
	default:
		return ""
	}
}

// Flatten joins all cell values of a row into one string, the form used
// for aggregate-label scans.
func (r Row) Flatten() string {
	parts := make([]string, 0, len(r))
	for _, c := range r {
		if s := c.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Text joins the document lines back into running text.
func (d *Document) Text() string {
	return strings.Join(d.Lines, "\n")
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
