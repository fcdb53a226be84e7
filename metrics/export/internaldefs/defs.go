// Package internaldefs holds the metric name and help tables shared by
// the Prometheus and OpenTelemetry exporters. It exists so the two
// exporters cannot drift apart on naming.
package internaldefs

import (
	canvasacl "github.com/inklet/canvasacl"
)

// CounterDef describes one exported counter.
type CounterDef struct {
	ID   canvasacl.MetricID
	Name string
	Help string
}

// HistogramDef describes one exported histogram.
type HistogramDef struct {
	ID   canvasacl.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in a stable order.
var CounterDefs = []CounterDef{
	{ID: canvasacl.MetricMessageAllowed, Name: "canvasacl_message_allowed_total", Help: "Messages that passed the ACL filter."},
	{ID: canvasacl.MetricMessageDenied, Name: "canvasacl_message_denied_total", Help: "Messages rejected by the ACL filter."},
	{ID: canvasacl.MetricCommandDeniedLocked, Name: "canvasacl_command_denied_locked_total", Help: "Canvas commands rejected by the session or per-user lock."},
	{ID: canvasacl.MetricUserStateChanged, Name: "canvasacl_user_state_changed_total", Help: "Messages that changed user membership state."},
	{ID: canvasacl.MetricLayerStateChanged, Name: "canvasacl_layer_state_changed_total", Help: "Messages that changed the layer ACL registry."},
	{ID: canvasacl.MetricFeatureTiersChanged, Name: "canvasacl_feature_tiers_changed_total", Help: "Feature tier table replacements."},
	{ID: canvasacl.MetricResets, Name: "canvasacl_resets_total", Help: "Engine resets."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: canvasacl.MetricFilterLatency, Name: "canvasacl_filter_latency_us", Help: "FilterMessage latency in microseconds."},
}

// HistogramBounds are the bucket upper bounds as Prometheus le labels,
// matching the engine's bucketing.
var HistogramBounds = [8]string{"1", "5", "10", "25", "50", "100", "500", "+Inf"}

// HistogramBoundSuffix names the same bounds in a form usable inside
// OpenTelemetry instrument names.
var HistogramBoundSuffix = [8]string{"1", "5", "10", "25", "50", "100", "500", "inf"}

// NormalizeBuckets pads or trims a raw bucket slice to the fixed bucket
// count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	copy(out[:], raw)
	return out
}

// CumulativeBuckets converts per-bucket counts to the cumulative form
// Prometheus histograms use.
func CumulativeBuckets(buckets [8]uint64) [8]uint64 {
	var out [8]uint64
	var sum uint64
	for i, v := range buckets {
		sum += v
		out[i] = sum
	}
	return out
}
