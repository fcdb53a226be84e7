package canvasacl

import (
	"fmt"

	"github.com/inklet/canvasacl/message"
)

// Builder assembles an [Engine]. A builder is single-use: Build succeeds
// at most once.
type Builder struct {
	config    Config
	auditSink AuditSink
	localUser message.UserID
	localMode bool

	built bool
}

// New returns a builder preloaded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithAuditSink sets the sink that receives audit events. Ignored unless
// the audit section is enabled.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithLocalUser makes the engine start in local mode: the given user is
// granted operator status immediately, as if Reset had been called. Used
// for offline editing and for the session-hosting client.
func (b *Builder) WithLocalUser(user message.UserID) *Builder {
	b.localUser = user
	b.localMode = true
	return b
}

// Build validates the configuration and produces the engine.
func (b *Builder) Build() (*Engine, error) {
	if b == nil {
		return nil, ErrEngineNotReady
	}
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := b.config
	if cfg.Audit.Enabled && cfg.Audit.BufferSize < 0 {
		return nil, fmt.Errorf("%w: negative buffer size %d", ErrInvalidAuditConfig, cfg.Audit.BufferSize)
	}

	engine := &Engine{
		cfg:       cfg,
		layers:    make(map[message.LayerID]LayerACL),
		protected: make(map[message.AnnotationID]struct{}),
		features:  cfg.Features.initialFeatureTiers(),
		metrics:   NewMetrics(cfg.Metrics),
	}

	if cfg.Audit.Enabled {
		engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	}

	if b.localMode {
		engine.users.Operators.Set(uint8(b.localUser))
	}

	b.built = true
	return engine, nil
}
