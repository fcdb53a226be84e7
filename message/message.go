package message

// UserID identifies a session participant. ID 0 is reserved for the server
// itself and is never assigned to a real participant.
type UserID uint8

// ServerUser is the reserved server identity. It is treated as an operator
// everywhere.
const ServerUser UserID = 0

// LayerID identifies a canvas layer. The high byte is the ID of the user
// who created the layer.
type LayerID uint16

// Creator returns the user who created the layer, derived from the ID's
// high byte.
func (id LayerID) Creator() UserID {
	return UserID(id >> 8)
}

// AnnotationID identifies a text annotation, using the same creator
// prefixing scheme as LayerID.
type AnnotationID uint16

// Creator returns the user who created the annotation.
func (id AnnotationID) Creator() UserID {
	return UserID(id >> 8)
}

// Message is the interface satisfied by every decoded session message.
type Message interface {
	// Sender returns the ID of the user the message originates from.
	// For server messages about a user (join, leave) this is the subject
	// user.
	Sender() UserID
}

// ControlMessage marks transport control messages. They never affect
// permission state and are always allowed.
type ControlMessage interface {
	Message
	control()
}

// ServerMessage marks server-announced state messages. They are never
// denied but may move permission state.
type ServerMessage interface {
	Message
	server()
}

// ClientMessage marks client metadata messages. Each variant carries its
// own authorization rule.
type ClientMessage interface {
	Message
	client()
}

// CommandMessage marks canvas commands. All of them are subject to the
// session-wide and per-user locks before any per-command rule applies.
type CommandMessage interface {
	Message
	command()
}
