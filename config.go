package canvasacl

import "github.com/inklet/canvasacl/permission"

// Config carries the engine's construction-time settings. Config values
// are read once during [Builder.Build] and treated as immutable afterward.
type Config struct {
	Features FeatureConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// FeatureConfig sets the initial feature tier table. The table can be
// replaced at runtime by an operator's feature reconfiguration message.
type FeatureConfig struct {
	// Tiers is the starting per-feature minimum tier table. The zero
	// value is replaced with [permission.DefaultFeatureTiers].
	Tiers permission.FeatureTiers

	// UseDefaults forces the default table even when Tiers is set.
	UseDefaults bool
}

// AuditConfig controls the audit event pipeline.
type AuditConfig struct {
	// Enabled turns audit emission on. When false no dispatcher
	// goroutine is started.
	Enabled bool

	// BufferSize is the dispatcher channel depth. Zero is treated as 1;
	// negative values are rejected by [Builder.Build].
	BufferSize int

	// DropIfFull makes Emit non-blocking: events that do not fit in the
	// buffer are counted as dropped instead of blocking the filter.
	DropIfFull bool

	// DeniedOnly restricts emission to denied messages and messages
	// that changed permission state, which is the interesting subset
	// for most deployments.
	DeniedOnly bool
}

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool

	// EnableLatencyHistograms additionally records FilterMessage
	// latency buckets.
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Features: FeatureConfig{
			Tiers:       permission.DefaultFeatureTiers(),
			UseDefaults: false,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// initialFeatureTiers resolves the starting tier table. A fully zero
// FeatureTiers would mean "everything operator-only", which is never what
// an untouched config intends, so the zero value maps to the defaults.
func (c FeatureConfig) initialFeatureTiers() permission.FeatureTiers {
	if c.UseDefaults || c.Tiers == (permission.FeatureTiers{}) {
		return permission.DefaultFeatureTiers()
	}
	return c.Tiers
}
