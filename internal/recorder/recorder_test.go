package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"ChainSentinel/internal/model"
)

func sampleEvent() *RunEvent {
	return &RunEvent{
		Dataset: &model.Dataset{
			Points:       []model.MetricPoint{{Date: "2024-01-01", STHMVRV: 1.23}},
			DateColumn:   "Date",
			MetricColumn: "ShortTermHolderMVRV",
			RowsParsed:   2,
			RowsDropped:  1,
			FetchedAt:    time.Now(),
		},
		OutputPath: "data/short-term-holder-mvrv.json",
	}
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	if err := rec.RecordRun(sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	if err := rec.RecordRun(sampleEvent()); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var count, points int
	var metricCol string
	row := rec.db.QueryRow("SELECT COUNT(*), MAX(points), MAX(metric_column) FROM fetch_runs")
	if err := row.Scan(&count, &points, &metricCol); err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if count != 1 || points != 1 || metricCol != "ShortTermHolderMVRV" {
		t.Errorf("unexpected run row: count=%d points=%d metric=%q", count, points, metricCol)
	}
}
