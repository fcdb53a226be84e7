// Package jointoken verifies signed session join tokens. A session host
// that delegates authentication to an external account service receives a
// token with each join request; verifying it yields the user's ID, display
// name, and the authenticated/moderator flags the engine's join handling
// consumes.
//
// Tokens are standard JWTs signed with Ed25519 (default) or HS256.
//
// # Architecture boundaries
//
// This package touches cryptography and wall-clock validation only. It
// never reads engine state; [Claims.JoinMessage] hands the result to the
// caller as a plain message value.
package jointoken
