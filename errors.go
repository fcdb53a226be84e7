package canvasacl

import "errors"

var (
	// ErrBuilderUsed is returned by Build when the builder has already
	// produced an engine.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrEngineNotReady is returned by operations on a nil or unbuilt
	// engine.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrInvalidAuditConfig is returned by Build when the audit section
	// is inconsistent.
	ErrInvalidAuditConfig = errors.New("invalid audit configuration")
)
