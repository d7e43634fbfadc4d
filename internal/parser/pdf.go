package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/aliquigan/invoicegl/internal/document"
)

// PDFParser handles PDF invoices. It extracts running text with the Go
// library (falling back to pdftotext if available) and reconstructs table
// regions from the positioned text of each page.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "invoicegl-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc := &document.Document{Title: titleFor(filename)}

	text, tables, err := extractPDF(tmpPath)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
		tables = nil
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf: %w", err)
	}

	doc.Lines = splitLines(text)
	doc.Tables = tables
	return doc, nil
}

func extractPDF(path string) (string, []document.Table, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	var buf strings.Builder
	var tables []document.Table

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)

		frags := make([]fragment, 0, 256)
		for _, t := range page.Content().Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			frags = append(frags, fragment{X: t.X, Y: t.Y, W: t.W, S: t.S})
		}
		if rows := assembleRows(frags); len(rows) > 0 {
			tables = append(tables, document.Table{Rows: rows, Page: i})
		}
	}
	return buf.String(), tables, nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
