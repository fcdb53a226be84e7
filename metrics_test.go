package canvasacl

import (
	"sync"
	"testing"
	"time"

	"github.com/inklet/canvasacl/message"
)

func TestMetricsCountDecisions(t *testing.T) {
	e := newTestEngine(t)

	e.FilterMessage(message.PenUp{User: 5})
	e.FilterMessage(message.Filtered{User: 5})
	e.FilterMessage(message.SessionOwner{Users: []message.UserID{1}})

	snap := e.MetricsSnapshot()
	if got := snap.Counters[MetricMessageAllowed]; got != 2 {
		t.Fatalf("allowed = %d, want 2", got)
	}
	if got := snap.Counters[MetricMessageDenied]; got != 1 {
		t.Fatalf("denied = %d, want 1", got)
	}
	if got := snap.Counters[MetricUserStateChanged]; got != 1 {
		t.Fatalf("user state changes = %d, want 1", got)
	}
}

func TestMetricsLockDenialCounter(t *testing.T) {
	e := newTestEngine(t)
	e.SetAllLocked(true)

	e.FilterMessage(message.PenUp{User: 5})

	snap := e.MetricsSnapshot()
	if got := snap.Counters[MetricCommandDeniedLocked]; got != 1 {
		t.Fatalf("lock denials = %d, want 1", got)
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Metrics.Enabled = false

	e, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	e.FilterMessage(message.PenUp{User: 5})

	snap := e.MetricsSnapshot()
	if len(snap.Counters) != 0 {
		t.Fatalf("disabled metrics reported %d counters", len(snap.Counters))
	}
}

func TestMetricsLatencyHistogram(t *testing.T) {
	cfg := defaultConfig()
	cfg.Metrics.EnableLatencyHistograms = true

	e, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	e.FilterMessage(message.PenUp{User: 5})

	snap := e.MetricsSnapshot()
	buckets, ok := snap.Histograms[MetricFilterLatency]
	if !ok {
		t.Fatal("expected a latency histogram")
	}
	var total uint64
	for _, b := range buckets {
		total += b
	}
	if total != 1 {
		t.Fatalf("histogram total = %d, want 1", total)
	}
}

func TestBucketIndexBoundaries(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{500 * time.Nanosecond, 0},
		{time.Microsecond, 0},
		{5 * time.Microsecond, 1},
		{10 * time.Microsecond, 2},
		{25 * time.Microsecond, 3},
		{50 * time.Microsecond, 4},
		{100 * time.Microsecond, 5},
		{500 * time.Microsecond, 6},
		{time.Millisecond, 7},
		{time.Second, 7},
	}
	for _, tc := range cases {
		if got := bucketIndex(tc.d); got != tc.want {
			t.Fatalf("bucketIndex(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.Inc(MetricMessageAllowed)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricMessageAllowed); got != workers*perWorker {
		t.Fatalf("counter = %d, want %d", got, workers*perWorker)
	}
}

func TestMetricsNilSafety(t *testing.T) {
	var m *Metrics

	m.Inc(MetricMessageAllowed)
	m.Observe(MetricFilterLatency, time.Microsecond)
	if m.Value(MetricMessageAllowed) != 0 {
		t.Fatal("nil metrics should read zero")
	}
	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatal("nil metrics snapshot should be empty")
	}
}
