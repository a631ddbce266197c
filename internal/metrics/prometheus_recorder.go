package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	reg             *prom.Registry
	tagResults      *prom.CounterVec
	untypedParams   *prom.CounterVec
	entities        prom.Counter
	processDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.tagResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "ngdoctags",
			Name:      "tags_processed_total",
			Help:      "Tags processed by title and outcome",
		}, []string{"tag", "result"})
		pr.untypedParams = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "ngdoctags",
			Name:      "untyped_params_total",
			Help:      "Parameter-like tags dropped because they carried no {type} expression",
		}, []string{"tag"})
		pr.entities = prom.NewCounter(prom.CounterOpts{
			Namespace: "ngdoctags",
			Name:      "entities_total",
			Help:      "Documented entities processed",
		})
		pr.processDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "ngdoctags",
			Name:      "process_duration_seconds",
			Help:      "Duration of processing one input document",
			Buckets:   prom.DefBuckets,
		})
		reg.MustRegister(pr.tagResults, pr.untypedParams, pr.entities, pr.processDuration)
	})
	return pr
}

// Registry returns the registry the metrics are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

func (p *PrometheusRecorder) IncTagResult(tag string, result ResultLabel) {
	p.tagResults.WithLabelValues(tag, string(result)).Inc()
}

func (p *PrometheusRecorder) IncUntypedParam(tag string) {
	p.untypedParams.WithLabelValues(tag).Inc()
}

func (p *PrometheusRecorder) IncEntities(n int) {
	p.entities.Add(float64(n))
}

func (p *PrometheusRecorder) ObserveProcessDuration(d time.Duration) {
	p.processDuration.Observe(d.Seconds())
}

// WriteTextfile writes the current metric values to path in the text
// exposition format read by the node exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
