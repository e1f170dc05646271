package writer

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ChainSentinel/internal/model"
)

// WriteDataset serializes the points as a pretty-printed JSON array and
// writes them to path, creating parent directories as needed. The file is
// fully replaced each run; a plain overwrite, not an atomic rename.
func WriteDataset(path string, ds *model.Dataset) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(ds.Points, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal points: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Printf("[INFO] wrote %d points to %s", len(ds.Points), path)
	log.Printf("[INFO] using MVRV column: %s", ds.MetricColumn)
	if ds.PriceColumn != "" {
		log.Printf("[INFO] including price column: %s", ds.PriceColumn)
	}
	return nil
}

// ReadDataset loads a previously written output file back into points.
func ReadDataset(path string) ([]model.MetricPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var points []model.MetricPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("parse output: %w", err)
	}
	return points, nil
}
