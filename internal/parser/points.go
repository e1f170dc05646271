package parser

import (
	"math"
	"strconv"
	"strings"

	"ChainSentinel/internal/model"
)

// BuildPoints projects resolved table rows onto metric points, preserving
// row order. Rows whose metric value does not parse as a number (or whose
// date is blank) are dropped rather than failing the run: the upstream
// series occasionally carries gaps and partial output beats no output.
// Price is best-effort per row and only included when it parses cleanly.
func BuildPoints(t *Table, m ColumnMapping) (points []model.MetricPoint, dropped int) {
	points = make([]model.MetricPoint, 0, len(t.Rows))
	for _, row := range t.Rows {
		date := strings.TrimSpace(row[m.Date])
		value, err := strconv.ParseFloat(strings.TrimSpace(row[m.Metric]), 64)
		if date == "" || err != nil || math.IsNaN(value) {
			dropped++
			continue
		}

		p := model.MetricPoint{Date: date, STHMVRV: value}
		if m.Price != "" {
			if price, err := strconv.ParseFloat(strings.TrimSpace(row[m.Price]), 64); err == nil && !math.IsNaN(price) {
				p.Price = &price
			}
		}
		points = append(points, p)
	}
	return points, dropped
}
