// Package message defines the closed set of decoded session messages that
// the canvasacl engine evaluates, partitioned into the four protocol
// categories: control, server, client, and command.
//
// # Categories
//
//   - [ControlMessage]: transport plumbing with no effect on shared state.
//   - [ServerMessage]: server-announced state (joins, leaves, privilege
//     lists). The server is trusted by construction, so these are never
//     denied, but several of them move permission state.
//   - [ClientMessage]: client metadata (telemetry, ACL change requests,
//     feature reconfiguration). Each variant has its own authorization rule.
//   - [CommandMessage]: canvas commands (drawing, layer and annotation
//     lifecycle, undo). Subject to the session and per-user locks before
//     any per-command rule.
//
// The category interfaces carry unexported marker methods, so the set of
// variants is sealed to this package and an engine type switch over them is
// checkable for exhaustiveness.
//
// # Ownership encoding
//
// Layer and annotation IDs embed their creator in the high byte:
// [LayerID.Creator] and [AnnotationID.Creator] are pure functions, there is
// no stored owner relation anywhere.
//
// # Architecture boundaries
//
// This package holds already-decoded values only. Wire encoding and
// decoding is a transport concern and lives outside this module.
package message
