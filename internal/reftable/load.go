package reftable

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// requiredColumns are the headers a reference table must carry. Loading
// fails fast when any is absent.
var requiredColumns = []string{"Item Code", "GL Code", "GL Description"}

// LoadXLSX reads the reference table from the first sheet of an xlsx
// workbook. The first row is the header row.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("reference table %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read reference table rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reference table %s is empty", path)
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var entries []Entry
	for _, row := range rows[1:] {
		e := Entry{
			Code:          cell(row, cols["Item Code"]),
			GLCode:        cell(row, cols["GL Code"]),
			GLDescription: cell(row, cols["GL Description"]),
		}
		if e.Code == "" {
			continue
		}
		entries = append(entries, e)
	}
	return New(entries), nil
}

// LoadCSV reads the reference table from a CSV export with the same
// header row as the xlsx form.
func LoadCSV(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}

	// Check the header up front so a missing column fails with a clear
	// message instead of silently loading empty fields.
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, fmt.Errorf("read reference table header: %w", err)
	}
	if _, err := headerIndex(header); err != nil {
		return nil, err
	}

	var rows []*Entry
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parse reference table: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		if r == nil || strings.TrimSpace(r.Code) == "" {
			continue
		}
		entries = append(entries, *r)
	}
	return New(entries), nil
}

// headerIndex maps required column names to their positions, rejecting
// headers that miss any of them.
func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("required column %q not found in reference table", col)
		}
	}
	return idx, nil
}
