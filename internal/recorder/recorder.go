package recorder

import "ChainSentinel/internal/model"

// RunEvent holds the observability facts of one completed fetch run.
type RunEvent struct {
	Dataset    *model.Dataset
	OutputPath string
}

// Recorder persists run history for later inspection.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	Close() error
}
