package model

import "time"

// MetricPoint is one daily observation of the short-term-holder MVRV series.
// Price is a pointer so that rows without a usable price value serialize
// without the key at all.
type MetricPoint struct {
	Date    string   `json:"date"`
	STHMVRV float64  `json:"sth_mvrv"`
	Price   *float64 `json:"price,omitempty"`
}

// Dataset holds one run's collected series plus the facts reported for
// observability: which columns were resolved and how many rows survived.
type Dataset struct {
	Points       []MetricPoint
	DateColumn   string
	MetricColumn string
	PriceColumn  string // empty when the response carried no price column
	RowsParsed   int
	RowsDropped  int
	FetchedAt    time.Time
}
