package parser

import "strings"

// ColumnMapping names the table columns the pipeline reads from. Price is
// optional and left empty when the response has no price column.
type ColumnMapping struct {
	Date   string
	Metric string
	Price  string
}

// Column names that are structural rather than metric-bearing. A column
// normalizing to one of these is never picked as the MVRV metric.
var excludedColumns = map[string]bool{
	"date":         true,
	"time":         true,
	"timestamp":    true,
	"price":        true,
	"marketcap":    true,
	"market_cap":   true,
	"realized_cap": true,
	"realizedcap":  true,
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolveColumns identifies the date, metric, and price columns of a table.
// BMP endpoints drift in naming (case, synonyms, extra columns), so the
// metric column is chosen by an ordered rule chain over normalized names:
//
//  1. among non-excluded columns containing "mvrv", prefer the first one
//     also containing "short" or "sth",
//  2. otherwise the first "mvrv" candidate in original column order,
//  3. otherwise the first non-excluded column in original order,
//  4. otherwise fail with a SchemaError.
//
// The date column must normalize to exactly "date"; it is never guessed.
// The heuristic only looks at column names, never at cell values, so a
// future schema with no "mvrv" name and no unexcluded leftover column
// fails loudly instead of silently mis-mapping.
func ResolveColumns(t *Table) (ColumnMapping, error) {
	var m ColumnMapping

	for _, col := range t.Columns {
		if normalizeColumn(col) == "date" {
			m.Date = col
			break
		}
	}
	if m.Date == "" {
		return m, &SchemaError{Reason: "expected a 'Date' column", Columns: t.Columns}
	}

	for _, col := range t.Columns {
		if normalizeColumn(col) == "price" {
			m.Price = col
			break
		}
	}

	var candidates []string
	for _, col := range t.Columns {
		lc := normalizeColumn(col)
		if excludedColumns[lc] {
			continue
		}
		if strings.Contains(lc, "mvrv") {
			candidates = append(candidates, col)
		}
	}

	if len(candidates) > 0 {
		for _, col := range candidates {
			lc := normalizeColumn(col)
			if strings.Contains(lc, "short") || strings.Contains(lc, "sth") {
				m.Metric = col
				return m, nil
			}
		}
		m.Metric = candidates[0]
		return m, nil
	}

	// Fallback: first column that is not structural.
	for _, col := range t.Columns {
		if !excludedColumns[normalizeColumn(col)] {
			m.Metric = col
			return m, nil
		}
	}

	return m, &SchemaError{Reason: "could not determine MVRV column", Columns: t.Columns}
}
