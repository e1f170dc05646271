package parser

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Table is the parsed CSV payload: the header's column names in their
// original order, and one name->value map per data row. Every row carries
// the full column set.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// ParseTable reads CSV text (header row first) into a Table.
func ParseTable(text string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	columns := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			row[col] = rec[i]
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	return &Table{Columns: columns, Rows: rows}, nil
}
