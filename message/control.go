package message

// ServerCommand is an opaque command envelope exchanged with the server.
// It never touches canvas or permission state.
type ServerCommand struct {
	User UserID
	Body []byte
}

func (m ServerCommand) Sender() UserID { return m.User }
func (ServerCommand) control()         {}

// Disconnect announces an imminent disconnect with a reason code.
type Disconnect struct {
	User    UserID
	Reason  uint8
	Message string
}

func (m Disconnect) Sender() UserID { return m.User }
func (Disconnect) control()         {}

// Ping is a keepalive probe or reply.
type Ping struct {
	User   UserID
	IsPong bool
}

func (m Ping) Sender() UserID { return m.User }
func (Ping) control()         {}
