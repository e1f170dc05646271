package parser

import "testing"

func TestBuildPoints_DropsUnparseableMetric(t *testing.T) {
	table := &Table{
		Columns: []string{"Date", "MVRV"},
		Rows: []map[string]string{
			{"Date": "2024-01-01", "MVRV": "1.23"},
			{"Date": "2024-01-02", "MVRV": "abc"},
			{"Date": "2024-01-03", "MVRV": ""},
			{"Date": "2024-01-04", "MVRV": "NaN"},
			{"Date": "2024-01-05", "MVRV": "2.5"},
		},
	}
	points, dropped := BuildPoints(table, ColumnMapping{Date: "Date", Metric: "MVRV"})
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if dropped != 3 {
		t.Errorf("expected 3 dropped rows, got %d", dropped)
	}
	if points[0].Date != "2024-01-01" || points[0].STHMVRV != 1.23 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
	if points[1].Date != "2024-01-05" || points[1].STHMVRV != 2.5 {
		t.Errorf("unexpected second point: %+v", points[1])
	}
}

func TestBuildPoints_DropsBlankDate(t *testing.T) {
	table := &Table{
		Columns: []string{"Date", "MVRV"},
		Rows: []map[string]string{
			{"Date": "", "MVRV": "1.0"},
			{"Date": "2024-01-02", "MVRV": "1.1"},
		},
	}
	points, dropped := BuildPoints(table, ColumnMapping{Date: "Date", Metric: "MVRV"})
	if len(points) != 1 || dropped != 1 {
		t.Fatalf("expected 1 point and 1 dropped, got %d and %d", len(points), dropped)
	}
}

func TestBuildPoints_PriceIsPerRowBestEffort(t *testing.T) {
	table := &Table{
		Columns: []string{"Date", "MVRV", "Price"},
		Rows: []map[string]string{
			{"Date": "2024-01-01", "MVRV": "1.0", "Price": "42000"},
			{"Date": "2024-01-02", "MVRV": "1.1", "Price": "n/a"},
			{"Date": "2024-01-03", "MVRV": "1.2", "Price": ""},
		},
	}
	points, dropped := BuildPoints(table, ColumnMapping{Date: "Date", Metric: "MVRV", Price: "Price"})
	if dropped != 0 {
		t.Fatalf("a bad price must not drop the row, dropped=%d", dropped)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Price == nil || *points[0].Price != 42000 {
		t.Errorf("expected price 42000 on first point, got %v", points[0].Price)
	}
	if points[1].Price != nil || points[2].Price != nil {
		t.Error("expected nil price on rows with unparseable price")
	}
}

func TestBuildPoints_NoPriceColumn(t *testing.T) {
	table := &Table{
		Columns: []string{"Date", "MVRV"},
		Rows:    []map[string]string{{"Date": "2024-01-01", "MVRV": "1.0"}},
	}
	points, _ := BuildPoints(table, ColumnMapping{Date: "Date", Metric: "MVRV"})
	if points[0].Price != nil {
		t.Error("expected nil price when no price column resolved")
	}
}
