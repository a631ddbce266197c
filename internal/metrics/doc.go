// Package metrics provides observability hooks for tag processing.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed:
//
//	p := process.New(dict).WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The CLI is short-lived and never serves HTTP; the Prometheus registry is
// written to a node-exporter textfile instead (WriteTextfile).
package metrics
