// Package reconcile matches extracted line items against the reference
// table to assign GL codes.
package reconcile

import (
	"log/slog"

	"github.com/aliquigan/invoicegl/internal/invoice"
	"github.com/aliquigan/invoicegl/internal/reftable"
)

// Reconciler joins line items against a loaded reference table.
type Reconciler struct {
	refs *reftable.Table
	log  *slog.Logger
}

func New(refs *reftable.Table, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{refs: refs, log: log}
}

// Item resolves the GL classification of a single line item. Exact code
// match first, then the zero-stripped fallback; items that still miss get
// the sentinel values. Repeat calls on the same item and table yield the
// same classification.
func (r *Reconciler) Item(item invoice.LineItem) invoice.LineItem {
	if e, ok := r.refs.Lookup(item.Code); ok {
		item.GLCode = e.GLCode
		item.GLDescription = e.GLDescription
		return item
	}
	if e, ok := r.refs.LookupStripped(item.Code); ok {
		item.GLCode = e.GLCode
		item.GLDescription = e.GLDescription
		return item
	}
	item.GLCode = invoice.GLCodeUnknown
	item.GLDescription = invoice.GLDescriptionUnknown
	return item
}

// Items resolves a whole extraction result, preserving order. Unmatched
// items are kept with sentinel values so nothing is silently dropped.
func (r *Reconciler) Items(items []invoice.LineItem) []invoice.LineItem {
	out := make([]invoice.LineItem, len(items))
	unmatched := 0
	for i, item := range items {
		out[i] = r.Item(item)
		if out[i].NeedsReview() {
			unmatched++
		}
	}
	if unmatched > 0 {
		r.log.Warn("items without GL match", "count", unmatched)
	}
	return out
}
