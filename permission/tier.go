package permission

// Tier is an ordered access rank. Lower numeric value means higher
// privilege: Operator is 0 and Guest is 3.
type Tier uint8

const (
	// TierOperator is the highest rank. User ID 0 (the server) always
	// holds it.
	TierOperator Tier = iota
	// TierTrusted is granted by the session operators to known users.
	TierTrusted
	// TierAuthenticated is held by users who joined with a verified
	// identity.
	TierAuthenticated
	// TierGuest is the default rank and the decode fallback for unknown
	// tier values.
	TierGuest
)

// tierCount is the number of defined tiers. Values >= tierCount decode to
// TierGuest.
const tierCount = 4

// TierFromByte decodes a wire tier value. Out-of-range input resolves to
// TierGuest rather than failing: unknown always means least privilege.
func TierFromByte(b uint8) Tier {
	if b >= tierCount {
		return TierGuest
	}
	return Tier(b)
}

// Satisfies reports whether the tier meets the given minimum requirement.
func (t Tier) Satisfies(required Tier) bool {
	return t <= required
}

// String returns the tier name for logs and audit events.
func (t Tier) String() string {
	switch t {
	case TierOperator:
		return "operator"
	case TierTrusted:
		return "trusted"
	case TierAuthenticated:
		return "authenticated"
	default:
		return "guest"
	}
}
