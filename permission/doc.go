// Package permission provides the pure data types behind canvasacl
// authorization checks: ordered access tiers, fixed-size user sets, and the
// per-feature minimum-tier table.
//
// # Tiers
//
// Four tiers exist, ordered from most to least privileged: Operator,
// Trusted, Authenticated, Guest. Lower numeric value means higher
// privilege, so a threshold check is a plain <= comparison. Any tier value
// decoded from external input that falls outside the known range resolves
// to Guest, never to an error.
//
// # User sets
//
// [UserSet] is a 256-bit membership set indexed directly by user ID. All
// operations are O(1) and the uint8 index type bounds every input to the
// valid ID space.
//
// # Architecture boundaries
//
// This package is a pure in-memory data structure with no I/O.
//
// # What this package must NOT do
//
//   - Access Redis, the network, or the clock.
//   - Import canvasacl, message, or session.
//   - Carry any mutable package-level state.
package permission
