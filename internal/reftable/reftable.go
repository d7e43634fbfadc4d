package reftable

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CodeWidth is the canonical width of an item code. Spreadsheet tools
// routinely drop leading zeros, so loaders pad digit-only codes back out
// to this width.
const CodeWidth = 9

// Entry maps one item code to its GL classification.
type Entry struct {
	Code          string `csv:"Item Code"`
	GLCode        string `csv:"GL Code"`
	GLDescription string `csv:"GL Description"`
}

// Table is the loaded reference dataset. Codes are canonicalized at load
// time; callers compare as given and never re-derive width assumptions.
type Table struct {
	entries  []Entry
	byCode   map[string]int
	stripped map[string]int // zero-stripped code -> first matching entry
}

// New builds a Table from raw entries, canonicalizing codes and indexing
// them for exact and zero-stripped lookup. On duplicate codes the first
// entry wins.
func New(entries []Entry) *Table {
	t := &Table{
		entries:  make([]Entry, 0, len(entries)),
		byCode:   make(map[string]int, len(entries)),
		stripped: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.Code = Canonicalize(e.Code)
		if e.Code == "" {
			continue
		}
		idx := len(t.entries)
		t.entries = append(t.entries, e)
		if _, ok := t.byCode[e.Code]; !ok {
			t.byCode[e.Code] = idx
		}
		s := strings.TrimLeft(e.Code, "0")
		if _, ok := t.stripped[s]; !ok {
			t.stripped[s] = idx
		}
	}
	return t
}

// Load reads a reference table from an .xlsx or .csv file.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported reference table format: %s", filepath.Ext(path))
	}
}

// Lookup finds an entry by canonical code.
func (t *Table) Lookup(code string) (Entry, bool) {
	if idx, ok := t.byCode[code]; ok {
		return t.entries[idx], true
	}
	return Entry{}, false
}

// LookupStripped finds the first entry whose zero-stripped code equals
// the zero-stripped form of the given code.
func (t *Table) LookupStripped(code string) (Entry, bool) {
	if idx, ok := t.stripped[strings.TrimLeft(code, "0")]; ok {
		return t.entries[idx], true
	}
	return Entry{}, false
}

// Len reports the number of loaded entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Canonicalize pads a digit-only code shorter than CodeWidth with leading
// zeros. Non-numeric codes pass through trimmed but otherwise untouched.
func Canonicalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if isDigits(code) && len(code) < CodeWidth {
		return strings.Repeat("0", CodeWidth-len(code)) + code
	}
	return code
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
