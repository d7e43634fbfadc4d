package parser

import (
	"sort"
	"strings"

	"github.com/aliquigan/invoicegl/internal/document"
)

// fragment is a positioned piece of page text. PDF coordinates have the
// origin at the bottom left, so larger Y means higher on the page.
type fragment struct {
	X, Y float64
	W    float64
	S    string
}

const (
	rowTolerance = 2.0 // max Y drift within one visual row
	cellGap      = 6.0 // horizontal gap that starts a new cell
	wordGap      = 1.0 // smaller gap still separating two words
)

// assembleRows reconstructs a table region from positioned text: group
// fragments into visual rows by Y, then split each row into cells
// wherever the horizontal gap exceeds the cell threshold.
func assembleRows(frags []fragment) []document.Row {
	if len(frags) == 0 {
		return nil
	}

	sort.Slice(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y > frags[j].Y // top of page first
		}
		return frags[i].X < frags[j].X
	})

	var rows []document.Row
	start := 0
	for i := 1; i <= len(frags); i++ {
		if i < len(frags) && frags[start].Y-frags[i].Y <= rowTolerance {
			continue
		}
		if row := rowFromFragments(frags[start:i]); len(row) > 0 {
			rows = append(rows, row)
		}
		start = i
	}
	return rows
}

func rowFromFragments(frags []fragment) document.Row {
	sort.Slice(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

	var row document.Row
	var cell strings.Builder
	var lastEnd float64

	flush := func() {
		row = append(row, document.TextCell(cell.String()))
		cell.Reset()
	}

	for i, f := range frags {
		if i > 0 {
			gap := f.X - lastEnd
			switch {
			case gap > cellGap:
				flush()
			case gap > wordGap && cell.Len() > 0:
				cell.WriteString(" ")
			}
		}
		cell.WriteString(f.S)
		end := f.X + f.W
		if end > lastEnd {
			lastEnd = end
		}
	}
	if cell.Len() > 0 {
		flush()
	}
	return row
}
