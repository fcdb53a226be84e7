package message

import "github.com/inklet/canvasacl/permission"

// Interval marks a pause in a recording. Only meaningful during playback.
type Interval struct {
	User   UserID
	Millis uint16
}

func (m Interval) Sender() UserID { return m.User }
func (Interval) client()          {}

// LaserTrail draws a fading laser pointer trail. Gated by the laser
// feature tier.
type LaserTrail struct {
	User        UserID
	Color       uint32
	Persistence uint8
}

func (m LaserTrail) Sender() UserID { return m.User }
func (LaserTrail) client()          {}

// MovePointer moves the user's pointer marker. Always allowed.
type MovePointer struct {
	User UserID
	X    int32
	Y    int32
}

func (m MovePointer) Sender() UserID { return m.User }
func (MovePointer) client()          {}

// Marker sets a bookmark in a recording. Always allowed.
type Marker struct {
	User UserID
	Text string
}

func (m Marker) Sender() UserID { return m.User }
func (Marker) client()          {}

// UserACL replaces the set of individually locked users. Operators only.
type UserACL struct {
	User   UserID
	Locked []UserID
}

func (m UserACL) Sender() UserID { return m.User }
func (UserACL) client()          {}

// LayerACL changes one layer's access controls. Requesting the default
// settings (unlocked, guest tier, no exclusive users) removes the layer's
// entry instead of storing one.
type LayerACL struct {
	User      UserID
	Layer     LayerID
	Locked    bool
	Tier      permission.Tier
	Exclusive []UserID
}

func (m LayerACL) Sender() UserID { return m.User }
func (LayerACL) client()          {}

// FeatureAccessLevels replaces all nine feature tier thresholds
// atomically. Operators only. Tier bytes outside the valid range decode to
// guest.
type FeatureAccessLevels struct {
	User  UserID
	Tiers [permission.FeatureCount]uint8
}

func (m FeatureAccessLevels) Sender() UserID { return m.User }
func (FeatureAccessLevels) client()          {}

// DefaultLayer announces the layer new users should start on. Operators
// only; no permission state changes.
type DefaultLayer struct {
	User  UserID
	Layer LayerID
}

func (m DefaultLayer) Sender() UserID { return m.User }
func (DefaultLayer) client()          {}

// Filtered wraps a message that was already rejected once, as stored in a
// recording. It is always denied again.
type Filtered struct {
	User    UserID
	Wrapped []byte
}

func (m Filtered) Sender() UserID { return m.User }
func (Filtered) client()          {}
