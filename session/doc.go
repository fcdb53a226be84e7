// Package session persists canvasacl permission state snapshots in Redis,
// so a restarted session host can restore operator lists, locks, layer
// ACLs, and feature tiers without replaying the whole command history.
//
// # Encoding
//
// Snapshots use a compact versioned binary encoding: a version byte, a
// flags byte, four 32-byte membership bitfields, the nine feature tier
// bytes, then length-prefixed layer and annotation sections. Decoding
// rejects truncated or unversioned blobs with [ErrSnapshotCorrupt].
//
// # Architecture boundaries
//
// This package owns the Redis round-trips and the snapshot wire format.
// It knows nothing about message evaluation and never imports the root
// canvasacl package; the engine converts its state to and from [Snapshot]
// itself.
package session
