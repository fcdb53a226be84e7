package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	canvasacl "github.com/inklet/canvasacl"
)

type fakeSource struct {
	snapshot canvasacl.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() canvasacl.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                       { return f.dropped }

func TestRenderIncludesCountersAndHistogram(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: canvasacl.MetricsSnapshot{
			Counters: map[canvasacl.MetricID]uint64{
				canvasacl.MetricMessageAllowed: 12,
				canvasacl.MetricMessageDenied:  3,
			},
			Histograms: map[canvasacl.MetricID][]uint64{
				canvasacl.MetricFilterLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	if !strings.Contains(out, "canvasacl_message_allowed_total 12") {
		t.Fatalf("expected allowed counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "canvasacl_message_denied_total 3") {
		t.Fatalf("expected denied counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "canvasacl_filter_latency_us_bucket{le=\"1\"} 1") {
		t.Fatalf("expected first histogram bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "canvasacl_filter_latency_us_bucket{le=\"+Inf\"} 36") {
		t.Fatalf("expected +Inf cumulative bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "canvasacl_audit_dropped_total 2") {
		t.Fatalf("expected audit dropped counter in output, got:\n%s", out)
	}
}

func TestRenderSkipsHistogramWithoutSamplesRecorded(t *testing.T) {
	exp := NewExporterFromSource(fakeSource{
		snapshot: canvasacl.MetricsSnapshot{
			Counters:   map[canvasacl.MetricID]uint64{},
			Histograms: map[canvasacl.MetricID][]uint64{},
		},
	})

	out := exp.Render()
	if strings.Contains(out, "canvasacl_filter_latency_us") {
		t.Fatalf("histogram rendered despite latency tracking being off:\n%s", out)
	}
	if !strings.Contains(out, "canvasacl_message_allowed_total 0") {
		t.Fatalf("counters must render even at zero:\n%s", out)
	}
}

func TestHandlerServesTextFormat(t *testing.T) {
	engine, err := canvasacl.New().Build()
	if err != nil {
		t.Fatalf("engine build failed: %v", err)
	}
	defer engine.Close()

	srv := httptest.NewServer(NewExporter(engine).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scrape status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
}
