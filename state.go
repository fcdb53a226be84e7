package canvasacl

import (
	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
)

// UserACLs is the session-wide user permission state: four membership
// sets plus the session lock flag. Engine accessors hand it out by value,
// so a copy in a caller's hands never dirties engine state.
type UserACLs struct {
	Operators     permission.UserSet
	Trusted       permission.UserSet
	Authenticated permission.UserSet
	Locked        permission.UserSet

	// AllLocked denies every canvas command for every user, operators
	// included, until it is lifted.
	AllLocked bool
}

// IsOperator reports whether the user holds operator status. User ID 0 is
// the server and always does.
func (a UserACLs) IsOperator(user message.UserID) bool {
	return user == message.ServerUser || a.Operators.Has(uint8(user))
}

// Tier derives the user's effective access tier from the membership sets.
// First match wins: operator, trusted, authenticated, then guest.
func (a UserACLs) Tier(user message.UserID) permission.Tier {
	switch {
	case a.IsOperator(user):
		return permission.TierOperator
	case a.Trusted.Has(uint8(user)):
		return permission.TierTrusted
	case a.Authenticated.Has(uint8(user)):
		return permission.TierAuthenticated
	default:
		return permission.TierGuest
	}
}

// LayerACL is one layer's access override: a hard lock, a minimum tier,
// and an optional exclusive-access allow list. A non-empty exclusive set
// overrides the tier requirement for its members but never the lock; an
// empty set means exclusivity is not in effect.
type LayerACL struct {
	Locked    bool
	Tier      permission.Tier
	Exclusive permission.UserSet
}

// lockedFor reports whether the layer entry denies the given user at the
// given tier.
func (l LayerACL) lockedFor(user message.UserID, tier permission.Tier) bool {
	if l.Locked {
		return true
	}
	if !l.Exclusive.IsEmpty() && !l.Exclusive.Has(uint8(user)) {
		return true
	}
	return !tier.Satisfies(l.Tier)
}

// isDefault reports whether the entry carries only default values, in
// which case it is equivalent to no entry at all.
func (l LayerACL) isDefault() bool {
	return !l.Locked && l.Tier == permission.TierGuest && l.Exclusive.IsEmpty()
}

func userSetOf(ids []message.UserID) permission.UserSet {
	var s permission.UserSet
	for _, id := range ids {
		s.Set(uint8(id))
	}
	return s
}
