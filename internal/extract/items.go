package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aliquigan/invoicegl/internal/document"
	"github.com/aliquigan/invoicegl/internal/invoice"
)

// codePattern is the canonical item code: exactly nine digits.
var codePattern = regexp.MustCompile(`^\d{9}$`)

// linePattern is the text fallback: a nine-digit code followed by two
// numbers anchored at the end of the line.
var linePattern = regexp.MustCompile(`(\d{9})[^\d]+([\d.]+)[^\d]+([\d.]+)$`)

// Tier names which extraction strategy produced the items.
type Tier string

const (
	TierNone        Tier = "none"
	TierFingerprint Tier = "fingerprint"
	TierTable       Tier = "table"
	TierText        Tier = "text"
)

// Result is the full output of a document extraction: candidate line
// items (GL fields unset), the document-reported totals, and counters.
type Result struct {
	Items  []invoice.LineItem
	Totals invoice.Totals
	Stats  Stats
}

// Extractor turns a parsed document into line-item candidates and
// document totals. Strategies run in order: fingerprint bootstrap, then
// the layout-aware table pass, then the text pattern fallback. The first
// tier that yields items is authoritative; totals are collected from the
// table rows and the running text regardless of which tier won.
type Extractor struct {
	layout    Layout
	templates []Template
	log       *slog.Logger
}

// New builds an Extractor. Templates are consulted in registration order.
func New(layout Layout, templates []Template, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{layout: layout, templates: templates, log: log}
}

// Extract runs the full strategy chain over one document.
func (e *Extractor) Extract(doc *document.Document) Result {
	var res Result
	acc := &Accumulator{}

	res.Items = e.matchTemplates(doc, &res.Stats)
	if len(res.Items) > 0 {
		res.Stats.Tier = TierFingerprint
	}

	tableItems := e.tablePass(doc, acc, &res.Stats)
	if len(res.Items) == 0 && len(tableItems) > 0 {
		res.Items = tableItems
		res.Stats.Tier = TierTable
	}

	if len(res.Items) == 0 {
		if textItems := e.textPass(doc.Lines, &res.Stats); len(textItems) > 0 {
			res.Items = textItems
			res.Stats.Tier = TierText
		}
	}

	acc.FillFromText(doc.Lines)
	res.Totals = acc.Totals()

	if len(res.Items) == 0 {
		res.Stats.Tier = TierNone
	}
	e.log.Info("extraction complete",
		"tier", res.Stats.Tier,
		"items", len(res.Items),
		"rows_visited", res.Stats.RowsVisited,
		"rows_discarded", res.Stats.RowsDiscarded,
		"aggregate_rows", res.Stats.AggregateRows,
	)
	return res
}

// tablePass walks every row of every table region, routing aggregate rows
// to the accumulator and collecting rows that match the item layout.
// Rows failing any structural check are discarded silently; that is
// expected noise filtering, not an error.
func (e *Extractor) tablePass(doc *document.Document, acc *Accumulator, stats *Stats) []invoice.LineItem {
	var items []invoice.LineItem
	for _, table := range doc.Tables {
		for _, row := range table.Rows {
			stats.RowsVisited++

			if len(row) < e.layout.MinColumns {
				stats.RowsDiscarded++
				continue
			}
			if e.isHeaderRow(row) {
				stats.RowsDiscarded++
				continue
			}
			if acc.ConsumeRow(row.Flatten()) {
				stats.AggregateRows++
				continue
			}

			item, ok := e.itemFromRow(row)
			if !ok {
				stats.RowsDiscarded++
				continue
			}
			items = append(items, item)
		}
	}
	return items
}

func (e *Extractor) isHeaderRow(row document.Row) bool {
	c := row[e.layout.HeaderCol]
	return c.Kind == document.CellText && strings.Contains(c.Text, e.layout.HeaderMarker)
}

// itemFromRow applies the structural checks of the table layout: a
// nine-digit code in the code column and strictly positive numeric
// quantity and amount in theirs.
func (e *Extractor) itemFromRow(row document.Row) (invoice.LineItem, bool) {
	codeCell := row[e.layout.CodeCol]
	if codeCell.Kind != document.CellText || !codePattern.MatchString(codeCell.Text) {
		return invoice.LineItem{}, false
	}

	qty, ok := cellFloat(row[e.layout.QuantityCol])
	if !ok || qty <= 0 {
		return invoice.LineItem{}, false
	}
	amt, ok := cellDecimal(row[e.layout.AmountCol])
	if !ok || !amt.IsPositive() {
		return invoice.LineItem{}, false
	}

	return invoice.LineItem{
		Code:      codeCell.Text,
		Quantity:  qty,
		LineTotal: amt,
	}, true
}

// textPass scans the running text line by line for the code-and-numbers
// pattern. Lines that fail numeric conversion are skipped without
// aborting the scan.
func (e *Extractor) textPass(lines []string, stats *Stats) []invoice.LineItem {
	var items []invoice.LineItem
	for _, line := range lines {
		for _, m := range linePattern.FindAllStringSubmatch(line, -1) {
			qty, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			amt, err := decimal.NewFromString(m[3])
			if err != nil {
				continue
			}
			items = append(items, invoice.LineItem{
				Code:      m[1],
				Quantity:  qty,
				LineTotal: amt,
			})
		}
	}
	stats.ItemsFromText = len(items)
	return items
}

// cellFloat reads a numeric value from a heterogeneous cell: native
// numbers pass through, numeric strings are converted, everything else
// disqualifies the cell.
func cellFloat(c document.Cell) (float64, bool) {
	switch c.Kind {
	case document.CellNumber:
		return c.Number, true
	case document.CellText:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func cellDecimal(c document.Cell) (decimal.Decimal, bool) {
	switch c.Kind {
	case document.CellNumber:
		return decimal.NewFromFloat(c.Number), true
	case document.CellText:
		v, err := decimal.NewFromString(strings.TrimSpace(c.Text))
		if err != nil {
			return decimal.Zero, false
		}
		return v, true
	default:
		return decimal.Zero, false
	}
}
