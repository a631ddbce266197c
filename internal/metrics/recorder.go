package metrics

import "time"

// ResultLabel enumerates tag outcome categories for counters.
type ResultLabel string

const (
	ResultHandled ResultLabel = "handled"
	ResultUnknown ResultLabel = "unknown"
	ResultInvalid ResultLabel = "invalid"
)

// Recorder defines observability hooks for tag processing.
type Recorder interface {
	IncTagResult(tag string, result ResultLabel)
	IncUntypedParam(tag string)
	IncEntities(n int)
	ObserveProcessDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncTagResult(string, ResultLabel)    {}
func (NoopRecorder) IncUntypedParam(string)              {}
func (NoopRecorder) IncEntities(int)                     {}
func (NoopRecorder) ObserveProcessDuration(time.Duration) {}
