// Package summary groups reconciled line items into GL buckets and
// recomputes totals bottom-up.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/aliquigan/invoicegl/internal/invoice"
)

// Summary is the aggregated spend by GL description, plus the totals
// recomputed from the buckets. The document-reported figures are kept
// separately for cross-checking and are never substituted in here.
type Summary struct {
	// ByDescription holds one bucket per distinct GL description.
	ByDescription map[string]decimal.Decimal

	// Descriptions lists the bucket keys in first-seen item order, for
	// stable rendering.
	Descriptions []string

	// Subtotal is the sum of all buckets.
	Subtotal decimal.Decimal

	// Total is Subtotal + shipping + tax.
	Total decimal.Decimal
}

// Build aggregates reconciled items. The item carrying shippingCode is
// the document's freight line: its amount already lives in the standalone
// shipping figure, so it is excluded here to avoid double-counting.
// Unmatched items contribute under their sentinel description.
func Build(items []invoice.LineItem, shippingCode string, shipping, tax decimal.Decimal) Summary {
	s := Summary{
		ByDescription: make(map[string]decimal.Decimal),
		Subtotal:      decimal.Zero,
	}

	for _, item := range items {
		if shippingCode != "" && item.Code == shippingCode {
			continue
		}
		desc := item.GLDescription
		if desc == "" {
			desc = invoice.GLDescriptionUnknown
		}
		if _, seen := s.ByDescription[desc]; !seen {
			s.Descriptions = append(s.Descriptions, desc)
		}
		s.ByDescription[desc] = s.ByDescription[desc].Add(item.LineTotal)
	}

	for _, amount := range s.ByDescription {
		s.Subtotal = s.Subtotal.Add(amount)
	}
	s.Total = s.Subtotal.Add(shipping).Add(tax)
	return s
}
