package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/aliquigan/invoicegl/internal/document"
)

// TextParser handles plain text exports. They carry no table regions, so
// extraction falls through to the text tier.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &document.Document{
		Title: titleFor(filename),
		Lines: lines,
	}, nil
}
