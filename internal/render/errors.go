package render

import "fmt"

// Stage names the part of the pipeline that failed.
type Stage string

const (
	StageIngestion     Stage = "ingestion"
	StageRasterization Stage = "rasterization"
	StageEncoding      Stage = "encoding"
)

// StageError wraps a fatal render error with the failing stage.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("render: %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("render: %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
