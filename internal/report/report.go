// Package report assembles the final structured output of a processing
// run and renders it for the console and the HTTP surface.
package report

import (
	"fmt"
	"strings"

	"github.com/aliquigan/invoicegl/internal/extract"
	"github.com/aliquigan/invoicegl/internal/invoice"
	"github.com/aliquigan/invoicegl/internal/summary"
)

// Report is the full result of one document-processing run. Document
// holds the figures reported by the invoice itself; Summary carries the
// recomputed subtotal and total, which are the figures surfaced as
// authoritative.
type Report struct {
	Source   string             `json:"source"`
	Items    []invoice.LineItem `json:"items"`
	Document invoice.Totals     `json:"document_totals"`
	Summary  summary.Summary    `json:"-"`
	Stats    extract.Stats      `json:"stats"`
}

// reportJSON flattens the summary for the wire format.
type reportJSON struct {
	Source       string             `json:"source"`
	Items        []invoice.LineItem `json:"items"`
	Document     invoice.Totals     `json:"document_totals"`
	Summary      map[string]string  `json:"summary"`
	Shipping     string             `json:"shipping_handling"`
	Tax          string             `json:"tax"`
	CalcSubtotal string             `json:"calculated_subtotal"`
	CalcTotal    string             `json:"calculated_total"`
	Stats        extract.Stats      `json:"stats"`
}

// ForJSON returns the wire form of the report, all monetary fields fixed
// to two decimals.
func (r *Report) ForJSON() any {
	sum := make(map[string]string, len(r.Summary.ByDescription))
	for desc, amount := range r.Summary.ByDescription {
		sum[desc] = amount.StringFixed(2)
	}
	return reportJSON{
		Source:       r.Source,
		Items:        r.Items,
		Document:     r.Document,
		Summary:      sum,
		Shipping:     r.Document.Shipping.StringFixed(2),
		Tax:          r.Document.Tax.StringFixed(2),
		CalcSubtotal: r.Summary.Subtotal.StringFixed(2),
		CalcTotal:    r.Summary.Total.StringFixed(2),
		Stats:        r.Stats,
	}
}

// Render writes the plain-text console report.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("=== Extracted Items ===\n")
	fmt.Fprintf(&b, "%-15s %-15s %-12s %-10s %s\n", "Item Code", "QTY shipped", "Line Total", "GL Code", "GL Description")
	b.WriteString(strings.Repeat("-", 80) + "\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "%-15s %-15.2f %-12s %-10s %s\n",
			item.Code, item.Quantity, item.LineTotal.StringFixed(2), item.GLCode, item.GLDescription)
	}

	b.WriteString("\n=== Summary by GL Description ===\n")
	for _, desc := range r.Summary.Descriptions {
		fmt.Fprintf(&b, "%s: %s\n", desc, r.Summary.ByDescription[desc].StringFixed(2))
	}

	fmt.Fprintf(&b, "\nSHIPPING, HDLG: %s\n", r.Document.Shipping.StringFixed(2))
	fmt.Fprintf(&b, "\nSub total: %s\n", r.Summary.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Tax: %s\n", r.Document.Tax.StringFixed(2))
	fmt.Fprintf(&b, "Total: %s\n", r.Summary.Total.StringFixed(2))

	return b.String()
}
