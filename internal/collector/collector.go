package collector

import (
	"fmt"
	"log"
	"time"

	"ChainSentinel/internal/model"
	"ChainSentinel/internal/parser"
)

// Collector orchestrates the fetch-unwrap-parse-resolve-filter pipeline.
type Collector struct {
	Fetcher Fetcher

	// MaxDropFraction, when positive, fails the run if more than this
	// fraction of parsed rows is dropped for unparseable metric values.
	// A wrong column choice would otherwise just yield a thin (or empty)
	// output file with no loud signal. Zero disables the check.
	MaxDropFraction float64
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, maxDropFraction float64) *Collector {
	return &Collector{Fetcher: fetcher, MaxDropFraction: maxDropFraction}
}

// Collect runs the pipeline once and returns the dataset. Every stage
// feeds the next; any stage error aborts the run.
func (c *Collector) Collect() (*model.Dataset, error) {
	raw, err := c.Fetcher.FetchMetric()
	if err != nil {
		return nil, fmt.Errorf("fetch metric: %w", err)
	}

	text, err := parser.Unwrap(raw)
	if err != nil {
		return nil, err
	}

	table, err := parser.ParseTable(text)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] parsed columns: %v", table.Columns)

	mapping, err := parser.ResolveColumns(table)
	if err != nil {
		return nil, err
	}

	points, dropped := parser.BuildPoints(table, mapping)
	if c.MaxDropFraction > 0 && len(table.Rows) > 0 {
		frac := float64(dropped) / float64(len(table.Rows))
		if frac > c.MaxDropFraction {
			return nil, fmt.Errorf("dropped %d of %d rows (%.0f%%), above max_drop_fraction %.2f",
				dropped, len(table.Rows), frac*100, c.MaxDropFraction)
		}
	}
	if dropped > 0 {
		log.Printf("[WARN] dropped %d of %d rows with unparseable values", dropped, len(table.Rows))
	}

	return &model.Dataset{
		Points:       points,
		DateColumn:   mapping.Date,
		MetricColumn: mapping.Metric,
		PriceColumn:  mapping.Price,
		RowsParsed:   len(table.Rows),
		RowsDropped:  dropped,
		FetchedAt:    time.Now(),
	}, nil
}
