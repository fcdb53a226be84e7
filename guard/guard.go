// Package guard wraps a canvasacl engine for shared use. The engine
// itself holds no locking; guard.Session serializes every filter call and
// state read, and fans change notifications out to subscribers so
// presentation layers know when to refresh their view of the permission
// state.
package guard

import (
	"sync"

	canvasacl "github.com/inklet/canvasacl"
	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
	"github.com/inklet/canvasacl/session"
)

// Session is a concurrency-safe front for one engine. The zero value is
// not usable; create one with Wrap.
type Session struct {
	mu     sync.Mutex
	engine *canvasacl.Engine

	subMu sync.Mutex
	subs  []chan canvasacl.ChangeMask
}

// Wrap takes ownership of the engine. The caller must not use the engine
// directly afterward.
func Wrap(engine *canvasacl.Engine) *Session {
	return &Session{engine: engine}
}

// FilterMessage evaluates one message under the session lock and notifies
// subscribers of any state change.
func (s *Session) FilterMessage(msg message.Message) (bool, canvasacl.ChangeMask) {
	s.mu.Lock()
	allowed, change := s.engine.FilterMessage(msg)
	s.mu.Unlock()

	if change != 0 {
		s.notify(change)
	}
	return allowed, change
}

// Reset reinitializes the engine and grants the local user operator
// status. Subscribers are notified of a full state change.
func (s *Session) Reset(localUser message.UserID) {
	s.mu.Lock()
	s.engine.Reset(localUser)
	s.mu.Unlock()

	s.notify(canvasacl.ChangeUsers | canvasacl.ChangeLayers | canvasacl.ChangeFeatures)
}

// SetAllLocked sets or lifts the session-wide lock.
func (s *Session) SetAllLocked(locked bool) {
	s.mu.Lock()
	s.engine.SetAllLocked(locked)
	s.mu.Unlock()

	s.notify(canvasacl.ChangeUsers)
}

// Users returns the current user permission state.
func (s *Session) Users() canvasacl.UserACLs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Users()
}

// Layers returns a copy of the layer ACL registry.
func (s *Session) Layers() map[message.LayerID]canvasacl.LayerACL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Layers()
}

// FeatureTiers returns the current feature tier table.
func (s *Session) FeatureTiers() permission.FeatureTiers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.FeatureTiers()
}

// Tier returns the user's current effective tier.
func (s *Session) Tier(user message.UserID) permission.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Tier(user)
}

// IsOperator reports whether the user currently holds operator status.
func (s *Session) IsOperator(user message.UserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.IsOperator(user)
}

// IsLayerLockedFor reports whether the layer denies drawing access to the
// user.
func (s *Session) IsLayerLockedFor(user message.UserID, layer message.LayerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.IsLayerLockedFor(user, layer)
}

// Snapshot captures the engine's complete permission state.
func (s *Session) Snapshot() session.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// RestoreSnapshot replaces all permission state with the snapshot's and
// notifies subscribers of a full state change.
func (s *Session) RestoreSnapshot(snap session.Snapshot) {
	s.mu.Lock()
	s.engine.RestoreSnapshot(snap)
	s.mu.Unlock()

	s.notify(canvasacl.ChangeUsers | canvasacl.ChangeLayers | canvasacl.ChangeFeatures)
}

// MetricsSnapshot returns the current counter values.
func (s *Session) MetricsSnapshot() canvasacl.MetricsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.MetricsSnapshot()
}

// Subscribe returns a channel that receives the change mask of every
// state-moving message. Slow subscribers miss intermediate notifications
// rather than blocking the filter; a receiver always observes the most
// recent change eventually.
func (s *Session) Subscribe() <-chan canvasacl.ChangeMask {
	ch := make(chan canvasacl.ChangeMask, 1)

	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()

	return ch
}

func (s *Session) notify(change canvasacl.ChangeMask) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		// Coalesce: fold this change into a pending notification
		// instead of blocking on a full channel.
		masked := change
		select {
		case ch <- masked:
		default:
			select {
			case pending := <-ch:
				masked |= pending
			default:
			}
			select {
			case ch <- masked:
			default:
			}
		}
	}
}

// Close stops the engine's audit dispatcher and closes all subscriber
// channels.
func (s *Session) Close() {
	s.mu.Lock()
	s.engine.Close()
	s.mu.Unlock()

	s.subMu.Lock()
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
	s.subMu.Unlock()
}
