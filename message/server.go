package message

// Join announces that a user has entered the session. Authenticated is set
// when the server has verified the user's identity (for example through a
// join token); it grants the authenticated tier, not operator status.
type Join struct {
	User          UserID
	Name          string
	Authenticated bool
	Mod           bool
	Avatar        []byte
}

func (m Join) Sender() UserID { return m.User }
func (Join) server()          {}

// Leave announces that a user has left the session.
type Leave struct {
	User UserID
}

func (m Leave) Sender() UserID { return m.User }
func (Leave) server()          {}

// SessionOwner replaces the operator list wholesale.
type SessionOwner struct {
	User  UserID
	Users []UserID
}

func (m SessionOwner) Sender() UserID { return m.User }
func (SessionOwner) server()          {}

// TrustedUsers replaces the trusted list wholesale.
type TrustedUsers struct {
	User  UserID
	Users []UserID
}

func (m TrustedUsers) Sender() UserID { return m.User }
func (TrustedUsers) server()          {}

// Chat is a public chat line. It has no effect on permission state.
type Chat struct {
	User UserID
	Text string
}

func (m Chat) Sender() UserID { return m.User }
func (Chat) server()          {}

// PrivateChat is a direct chat line between two users. No permission
// effect.
type PrivateChat struct {
	User   UserID
	Target UserID
	Text   string
}

func (m PrivateChat) Sender() UserID { return m.User }
func (PrivateChat) server()          {}

// SoftReset marks a session history reset point. No permission effect.
type SoftReset struct {
	User UserID
}

func (m SoftReset) Sender() UserID { return m.User }
func (SoftReset) server()          {}
