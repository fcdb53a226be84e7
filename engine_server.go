package canvasacl

import "github.com/inklet/canvasacl/message"

// handleServer applies server-announced state. Server messages are never
// denied; the return value is the change mask only.
func (e *Engine) handleServer(msg message.ServerMessage) ChangeMask {
	switch m := msg.(type) {
	case message.Join:
		if m.Authenticated {
			e.users.Authenticated.Set(uint8(m.User))
			return ChangeUsers
		}
		return 0

	case message.Leave:
		// Per-layer exclusive grants for the departing user are left
		// in place; a rejoining user with the same ID inherits them.
		e.users.Operators.Clear(uint8(m.User))
		e.users.Trusted.Clear(uint8(m.User))
		e.users.Authenticated.Clear(uint8(m.User))
		e.users.Locked.Clear(uint8(m.User))
		return ChangeUsers

	case message.SessionOwner:
		e.users.Operators = userSetOf(m.Users)
		return ChangeUsers

	case message.TrustedUsers:
		e.users.Trusted = userSetOf(m.Users)
		return ChangeUsers

	default:
		// Chat, PrivateChat, SoftReset: no permission effect.
		return 0
	}
}
