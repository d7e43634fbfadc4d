package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/aliquigan/invoicegl/internal/document"
)

// HTMLParser handles HTML invoice exports: <table> elements become table
// regions, everything else contributes text lines.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &document.Document{Title: titleFor(filename)}
	if title := findTitle(root); title != "" {
		doc.Title = title
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "table":
				if table := tableFromNode(n); len(table.Rows) > 0 {
					doc.Tables = append(doc.Tables, table)
					for _, row := range table.Rows {
						if flat := row.Flatten(); flat != "" {
							doc.Lines = append(doc.Lines, flat)
						}
					}
				}
				return
			case "p", "li", "td", "blockquote", "h1", "h2", "h3", "h4", "h5", "h6":
				if t := textContent(n); t != "" {
					doc.Lines = append(doc.Lines, splitLines(t)...)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	body := findBody(root)
	if body != nil {
		walk(body)
	} else {
		walk(root)
	}

	return doc, nil
}

// tableFromNode converts a <table> element into a table region: one row
// per <tr>, one cell per <td> or <th>.
func tableFromNode(n *html.Node) document.Table {
	var table document.Table
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var row document.Row
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, document.TextCell(textContent(c)))
				}
			}
			if len(row) > 0 {
				table.Rows = append(table.Rows, row)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return table
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
