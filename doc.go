// Package canvasacl is the access-control decision engine for a real-time
// collaborative canvas session. Every state-changing message a participant
// sends passes through [Engine.FilterMessage], which returns an allow/deny
// verdict and a [ChangeMask] describing which categories of permission
// state the message moved.
//
// The engine tracks the mutable permission state future decisions depend
// on: who is an operator, who is trusted or locked, the per-feature
// minimum tiers, per-layer access controls, and which annotations are
// protected. It consumes already-decoded messages from the
// [github.com/inklet/canvasacl/message] package and performs no I/O,
// serialization, or rendering of its own.
//
// # Concurrency
//
// FilterMessage evaluates and mutates in one synchronous step and the
// engine holds no internal locking. Callers that share one engine across
// goroutines must serialize access; the guard subpackage provides the
// standard wrapper.
//
// # Architecture boundaries
//
// canvasacl is the public surface. It exposes [Engine], [Builder],
// [Config], the read-only state views, metrics, and audit types. Message
// shapes live in message/, pure permission data in permission/, and the
// Redis snapshot store in session/.
//
// # What this package must NOT do
//
//   - Decode or encode wire messages.
//   - Touch the network or Redis (session/ owns persistence).
//   - Return errors from FilterMessage: a denied message is a verdict,
//     not a failure, and malformed tier values degrade to guest.
package canvasacl
