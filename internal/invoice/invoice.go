package invoice

import "github.com/shopspring/decimal"

// Sentinel GL values for items with no reference match. These items are
// surfaced to a human reviewer, never dropped.
const (
	GLCodeUnknown        = "ASK BOSS"
	GLDescriptionUnknown = "ASK BOSS FOR PROPER GL"
)

// LineItem is one purchased product entry on an invoice. GLCode and
// GLDescription stay empty until reconciliation, after which both are set
// or both carry the sentinel values.
type LineItem struct {
	Code          string          `json:"code"`
	Quantity      float64         `json:"quantity"`
	LineTotal     decimal.Decimal `json:"line_total"`
	GLCode        string          `json:"gl_code,omitempty"`
	GLDescription string          `json:"gl_description,omitempty"`
}

// NeedsReview reports whether the item carries the sentinel GL values.
func (i LineItem) NeedsReview() bool {
	return i.GLCode == GLCodeUnknown
}

// Totals are the monetary figures the document itself reports. They are
// used for cross-validation only and never overwritten by computed values.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Shipping decimal.Decimal `json:"shipping_handling"`
}
