package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders the report as a Markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Invoice report: %s\n\n", r.Source)

	b.WriteString("## Extracted items\n\n")
	b.WriteString("| Item Code | Qty | Line Total | GL Code | GL Description |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "| %s | %.2f | %s | %s | %s |\n",
			item.Code, item.Quantity, item.LineTotal.StringFixed(2), item.GLCode, item.GLDescription)
	}

	b.WriteString("\n## Summary by GL description\n\n")
	b.WriteString("| GL Description | Amount |\n|---|---|\n")
	for _, desc := range r.Summary.Descriptions {
		fmt.Fprintf(&b, "| %s | %s |\n", desc, r.Summary.ByDescription[desc].StringFixed(2))
	}

	b.WriteString("\n## Totals\n\n")
	fmt.Fprintf(&b, "- Shipping, hdlg: %s\n", r.Document.Shipping.StringFixed(2))
	fmt.Fprintf(&b, "- Sub total: %s\n", r.Summary.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "- Tax: %s\n", r.Document.Tax.StringFixed(2))
	fmt.Fprintf(&b, "- Total: %s\n", r.Summary.Total.StringFixed(2))

	if !r.Document.Subtotal.IsZero() || !r.Document.Total.IsZero() {
		b.WriteString("\n## Document-reported figures (cross-check)\n\n")
		fmt.Fprintf(&b, "- Sub total: %s\n", r.Document.Subtotal.StringFixed(2))
		fmt.Fprintf(&b, "- Total: %s\n", r.Document.Total.StringFixed(2))
	}

	return b.String()
}

// HTML renders the Markdown report to HTML. Tables need the GFM
// extension.
func (r *Report) HTML() (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(r.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("render report html: %w", err)
	}
	return buf.String(), nil
}
