package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aliquigan/invoicegl/internal/invoice"
)

// moneyPattern matches a decimal-formatted monetary figure: digits, a
// point, exactly two decimals.
var moneyPattern = regexp.MustCompile(`\d+\.\d{2}`)

// aggregateField identifies one of the labeled document totals.
type aggregateField int

const (
	fieldNone aggregateField = iota
	fieldShipping
	fieldSubtotal
	fieldTotal
	fieldTax
)

// Accumulator collects the document-reported totals. Table rows feed it
// during the table pass; the text pass only fills fields still unset.
type Accumulator struct {
	totals invoice.Totals
}

// classify routes a flattened row or text line to at most one total.
// Labels are checked in a fixed priority order so a line carrying both a
// shipping and a tax label lands in exactly one bucket:
// SHIPPING/HDLG, then SUB TOTAL, then TOTAL (CAD), then TAX. A TAX label
// co-occurring with SUMMARY is a tax-summary header, not a total.
func classify(s string) aggregateField {
	switch {
	case strings.Contains(s, "SHIPPING") || strings.Contains(s, "HDLG"):
		return fieldShipping
	case strings.Contains(s, "SUB TOTAL"):
		return fieldSubtotal
	case strings.Contains(s, "TOTAL (CAD)"):
		return fieldTotal
	case strings.Contains(s, "TAX") && !strings.Contains(s, "SUMMARY"):
		return fieldTax
	default:
		return fieldNone
	}
}

// ConsumeRow scans a flattened table row for an aggregate label. When one
// is found the row is consumed: the rightmost decimal-formatted number in
// the row becomes the value (the rightmost figure in a label row is the
// total, not a quantity or code fragment) and the caller must not treat
// the row as a line item.
func (a *Accumulator) ConsumeRow(flat string) bool {
	field := classify(flat)
	if field == fieldNone {
		return false
	}
	if v, ok := lastMoney(flat); ok {
		a.set(field, v)
	}
	return true
}

// FillFromText is the text fallback. Subtotal, tax and total form one
// fallback group, triggered when any of the three is still zero; shipping
// is checked on its own. Values already set by the table pass are never
// overwritten.
func (a *Accumulator) FillFromText(lines []string) {
	if a.totals.Subtotal.IsZero() || a.totals.Tax.IsZero() || a.totals.Total.IsZero() {
		for _, line := range lines {
			field := classify(line)
			if field == fieldNone || field == fieldShipping {
				continue
			}
			if !a.get(field).IsZero() {
				continue
			}
			if v, ok := lastMoney(line); ok {
				a.set(field, v)
			}
		}
	}
	if a.totals.Shipping.IsZero() {
		for _, line := range lines {
			if classify(line) != fieldShipping {
				continue
			}
			if v, ok := lastMoney(line); ok {
				a.set(fieldShipping, v)
			}
		}
	}
}

// Totals returns the accumulated document totals, zero-valued where no
// figure was found.
func (a *Accumulator) Totals() invoice.Totals {
	return a.totals
}

func (a *Accumulator) set(f aggregateField, v decimal.Decimal) {
	switch f {
	case fieldShipping:
		a.totals.Shipping = v
	case fieldSubtotal:
		a.totals.Subtotal = v
	case fieldTotal:
		a.totals.Total = v
	case fieldTax:
		a.totals.Tax = v
	}
}

func (a *Accumulator) get(f aggregateField) decimal.Decimal {
	switch f {
	case fieldShipping:
		return a.totals.Shipping
	case fieldSubtotal:
		return a.totals.Subtotal
	case fieldTotal:
		return a.totals.Total
	case fieldTax:
		return a.totals.Tax
	}
	return decimal.Zero
}

// lastMoney extracts the last decimal-formatted number from a string.
func lastMoney(s string) (decimal.Decimal, bool) {
	nums := moneyPattern.FindAllString(s, -1)
	if len(nums) == 0 {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(nums[len(nums)-1])
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
