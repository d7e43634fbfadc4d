package extract

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliquigan/invoicegl/internal/document"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestExtractor(templates ...Template) *Extractor {
	return New(DefaultLayout(), templates, testLogger())
}

// itemRow builds a layout-shaped row: code in column 1, quantity in
// column 7, amount in column 9.
func itemRow(code string, qty, amt document.Cell) document.Row {
	row := make(document.Row, 10)
	row[1] = document.TextCell(code)
	row[7] = qty
	row[9] = amt
	return row
}

func labelRow(label string) document.Row {
	row := make(document.Row, 10)
	row[0] = document.TextCell(label)
	return row
}

func docWithRows(rows ...document.Row) *document.Document {
	return &document.Document{
		Title:  "test-invoice",
		Tables: []document.Table{{Rows: rows}},
	}
}

func TestTablePass_ValidItemRow(t *testing.T) {
	doc := docWithRows(itemRow("011120225", document.NumberCell(16), document.TextCell("62.56")))

	res := newTestExtractor().Extract(doc)

	require.Len(t, res.Items, 1)
	assert.Equal(t, TierTable, res.Stats.Tier)
	assert.Equal(t, "011120225", res.Items[0].Code)
	assert.Equal(t, 16.0, res.Items[0].Quantity)
	assert.Equal(t, "62.56", res.Items[0].LineTotal.StringFixed(2))
}

func TestTablePass_DiscardsStructuralNoise(t *testing.T) {
	tests := []struct {
		name string
		row  document.Row
	}{
		{"row too short", document.Row{document.TextCell("011120225"), document.TextCell("16")}},
		{"header row", func() document.Row {
			row := itemRow("011120225", document.NumberCell(16), document.TextCell("62.56"))
			row[0] = document.TextCell("LN #")
			return row
		}()},
		{"code not nine digits", itemRow("1234", document.NumberCell(16), document.TextCell("62.56"))},
		{"code with letters", itemRow("01112022A", document.NumberCell(16), document.TextCell("62.56"))},
		{"missing quantity", itemRow("011120225", document.Cell{}, document.TextCell("62.56"))},
		{"non-numeric quantity", itemRow("011120225", document.TextCell("CASE"), document.TextCell("62.56"))},
		{"missing amount", itemRow("011120225", document.NumberCell(16), document.Cell{})},
		{"zero quantity", itemRow("011120225", document.NumberCell(0), document.TextCell("62.56"))},
		{"negative amount", itemRow("011120225", document.NumberCell(16), document.TextCell("-62.56"))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := newTestExtractor().Extract(docWithRows(tc.row))
			assert.Empty(t, res.Items)
			assert.Equal(t, 1, res.Stats.RowsDiscarded)
		})
	}
}

func TestTablePass_AggregateRowRoutedToTotals(t *testing.T) {
	doc := docWithRows(
		labelRow("SUB TOTAL 62.56"),
		itemRow("011120225", document.NumberCell(16), document.TextCell("62.56")),
	)

	res := newTestExtractor().Extract(doc)

	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Stats.AggregateRows)
	assert.Equal(t, "62.56", res.Totals.Subtotal.StringFixed(2))
}

func TestTablePass_NumericStringQuantity(t *testing.T) {
	doc := docWithRows(itemRow("011120225", document.TextCell("16"), document.NumberCell(62.56)))

	res := newTestExtractor().Extract(doc)

	require.Len(t, res.Items, 1)
	assert.Equal(t, 16.0, res.Items[0].Quantity)
}

func TestTextFallback_UsedWhenTablesEmpty(t *testing.T) {
	doc := &document.Document{
		Title: "test-invoice",
		Lines: []string{
			"STARLIGHT DISTRIBUTING CO",
			"011120225 CAFFE VERONA 16 62.56",
			"011107006 ESPRESSO ROAST 48 192.48",
			"not a line item",
		},
	}

	res := newTestExtractor().Extract(doc)

	require.Len(t, res.Items, 2)
	assert.Equal(t, TierText, res.Stats.Tier)
	assert.Equal(t, 2, res.Stats.ItemsFromText)
	assert.Equal(t, "011107006", res.Items[1].Code)
	assert.Equal(t, 48.0, res.Items[1].Quantity)
	assert.Equal(t, "192.48", res.Items[1].LineTotal.StringFixed(2))
}

func TestTextFallback_BadNumbersSkippedWithoutAborting(t *testing.T) {
	doc := &document.Document{
		Lines: []string{
			"011120225 WIDGET 1.2.3 4.5.6", // fails numeric conversion
			"011107006 ESPRESSO ROAST 48 192.48",
		},
	}

	res := newTestExtractor().Extract(doc)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "011107006", res.Items[0].Code)
}

func TestExtract_ZeroItems(t *testing.T) {
	doc := &document.Document{
		Lines: []string{"nothing to see here", "TOTAL (CAD) 13591.55"},
	}

	res := newTestExtractor().Extract(doc)

	assert.Empty(t, res.Items)
	assert.Equal(t, TierNone, res.Stats.Tier)
	assert.Equal(t, "13591.55", res.Totals.Total.StringFixed(2), "totals still extracted")
}

func TestExtract_TableTierWinsOverText(t *testing.T) {
	doc := docWithRows(itemRow("011120225", document.NumberCell(16), document.TextCell("62.56")))
	doc.Lines = []string{"011107006 ESPRESSO ROAST 48 192.48"}

	res := newTestExtractor().Extract(doc)

	require.Len(t, res.Items, 1)
	assert.Equal(t, TierTable, res.Stats.Tier)
	assert.Equal(t, "011120225", res.Items[0].Code)
}
