package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncTagResult("param", ResultHandled)
	pr.IncTagResult("param", ResultHandled)
	pr.IncTagResult("since", ResultUnknown)
	pr.IncUntypedParam("param")
	pr.IncEntities(3)
	pr.ObserveProcessDuration(20 * time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) != 4 {
		t.Fatalf("expected 4 metric families, got %d", len(mfs))
	}
	if got := testutil.ToFloat64(pr.tagResults.WithLabelValues("param", string(ResultHandled))); got != 2 {
		t.Errorf("expected 2 handled param tags, got %v", got)
	}
	if got := testutil.ToFloat64(pr.entities); got != 3 {
		t.Errorf("expected 3 entities, got %v", got)
	}
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncEntities(1)

	path := filepath.Join(t.TempDir(), "ngdoctags.prom")
	if err := pr.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "ngdoctags_entities_total 1") {
		t.Errorf("expected entities counter in textfile, got:\n%s", data)
	}
}
