package canvasacl

import (
	"time"

	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
)

// Engine is the per-session access-control decision engine. One engine
// instance owns one session's permission state; callers create it through
// [Builder.Build] and must serialize access to it themselves (see the
// guard subpackage).
type Engine struct {
	cfg Config

	users     UserACLs
	layers    map[message.LayerID]LayerACL
	protected map[message.AnnotationID]struct{}
	features  permission.FeatureTiers

	metrics *Metrics
	audit   *auditDispatcher
}

// FilterMessage evaluates one message against the current permission
// state. It returns whether the message is allowed to affect shared
// session state, and a mask of the permission state categories the
// message changed. A denied message never mutates state.
//
// Only server and client messages surface mask bits; canvas commands keep
// their incidental bookkeeping (layer ACL removal on delete, annotation
// protect flags) out of the mask.
func (e *Engine) FilterMessage(msg message.Message) (bool, ChangeMask) {
	if e == nil || msg == nil {
		return false, 0
	}

	start := time.Time{}
	if e.metrics.LatencyEnabled() {
		start = time.Now()
	}

	allowed := false
	var change ChangeMask

	switch m := msg.(type) {
	case message.ControlMessage:
		// Transport plumbing, nothing to check.
		allowed = true
	case message.ServerMessage:
		// The server is trusted by construction.
		allowed = true
		change = e.handleServer(m)
	case message.ClientMessage:
		allowed, change = e.handleClient(m)
	case message.CommandMessage:
		allowed = e.handleCommand(m)
	}

	e.recordDecision(msg, allowed, change)
	if !start.IsZero() {
		e.metrics.Observe(MetricFilterLatency, time.Since(start))
	}

	return allowed, change
}

// Reset reinitializes all permission state to defaults and grants the
// given local user operator status. Used when entering local or offline
// editing mode, and when a session is restarted.
func (e *Engine) Reset(localUser message.UserID) {
	if e == nil {
		return
	}
	e.users = UserACLs{}
	e.layers = make(map[message.LayerID]LayerACL)
	e.protected = make(map[message.AnnotationID]struct{})
	e.features = e.cfg.Features.initialFeatureTiers()

	e.users.Operators.Set(uint8(localUser))
	e.metrics.Inc(MetricResets)
}

// SetAllLocked sets or lifts the session-wide lock. The flag arrives out
// of band (session settings are a host concern, not a message), so it has
// an explicit setter instead of a message rule. While set, every canvas
// command is denied, operators included.
func (e *Engine) SetAllLocked(locked bool) {
	if e == nil {
		return
	}
	e.users.AllLocked = locked
}

// Users returns a copy of the current session-wide user permission state.
func (e *Engine) Users() UserACLs {
	if e == nil {
		return UserACLs{}
	}
	return e.users
}

// Layers returns a copy of the per-layer ACL registry. Layers without an
// entry carry no restriction beyond the feature tier table.
func (e *Engine) Layers() map[message.LayerID]LayerACL {
	if e == nil {
		return nil
	}
	layers := make(map[message.LayerID]LayerACL, len(e.layers))
	for id, acl := range e.layers {
		layers[id] = acl
	}
	return layers
}

// FeatureTiers returns the current feature tier table.
func (e *Engine) FeatureTiers() permission.FeatureTiers {
	if e == nil {
		return permission.DefaultFeatureTiers()
	}
	return e.features
}

// Tier returns the user's current effective access tier.
func (e *Engine) Tier(user message.UserID) permission.Tier {
	if e == nil {
		return permission.TierGuest
	}
	return e.users.Tier(user)
}

// IsOperator reports whether the user currently holds operator status.
func (e *Engine) IsOperator(user message.UserID) bool {
	return e != nil && e.users.IsOperator(user)
}

// IsLayerLockedFor reports whether the layer's ACL entry denies drawing
// access to the user. Layers without an entry are never locked.
func (e *Engine) IsLayerLockedFor(user message.UserID, layer message.LayerID) bool {
	if e == nil {
		return false
	}
	acl, ok := e.layers[layer]
	if !ok {
		return false
	}
	return acl.lockedFor(user, e.users.Tier(user))
}

// IsAnnotationProtected reports whether the annotation currently carries
// the protect flag. The flag itself does not gate access (creator and
// operator status do); it is tracked for presentation layers.
func (e *Engine) IsAnnotationProtected(id message.AnnotationID) bool {
	if e == nil {
		return false
	}
	_, ok := e.protected[id]
	return ok
}

// ProtectedAnnotations returns the IDs of all currently protected
// annotations, in unspecified order.
func (e *Engine) ProtectedAnnotations() []message.AnnotationID {
	if e == nil || len(e.protected) == 0 {
		return nil
	}
	ids := make([]message.AnnotationID, 0, len(e.protected))
	for id := range e.protected {
		ids = append(ids, id)
	}
	return ids
}

// MetricsSnapshot returns the current counter values.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// AuditDropped returns the number of audit events dropped under
// backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// Close stops the audit dispatcher after draining buffered events. The
// engine remains usable for filtering afterward; further audit events are
// discarded.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

func (e *Engine) recordDecision(msg message.Message, allowed bool, change ChangeMask) {
	if allowed {
		e.metrics.Inc(MetricMessageAllowed)
	} else {
		e.metrics.Inc(MetricMessageDenied)
	}
	if change.Has(ChangeUsers) {
		e.metrics.Inc(MetricUserStateChanged)
	}
	if change.Has(ChangeLayers) {
		e.metrics.Inc(MetricLayerStateChanged)
	}
	if change.Has(ChangeFeatures) {
		e.metrics.Inc(MetricFeatureTiersChanged)
	}

	if e.audit == nil {
		return
	}
	if e.cfg.Audit.DeniedOnly && allowed && change == 0 {
		return
	}
	e.audit.Emit(newAuditEvent(msg, allowed, change))
}
