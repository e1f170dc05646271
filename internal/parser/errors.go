package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse indicates the API returned a body that is empty after
// trimming whitespace. Raised before any CSV parsing is attempted.
var ErrEmptyResponse = errors.New("empty response body")

// ErrEmptyTable indicates the CSV parsed cleanly but contained no data rows.
var ErrEmptyTable = errors.New("parsed table has no rows")

// SchemaError indicates the response columns do not match what the pipeline
// requires: either the date column is missing, or no column survives the
// exclusion set during metric resolution.
type SchemaError struct {
	Reason  string
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s (columns: %s)", e.Reason, strings.Join(e.Columns, ", "))
}
