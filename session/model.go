package session

import "github.com/inklet/canvasacl/permission"

// Snapshot is the portable form of one session's permission state.
// Membership lists hold user IDs in ascending order; tier bytes use the
// wire encoding and decode back through the usual clamp-to-guest rule.
type Snapshot struct {
	Operators     []uint8
	Trusted       []uint8
	Authenticated []uint8
	Locked        []uint8
	AllLocked     bool

	FeatureTiers [permission.FeatureCount]uint8

	Layers []LayerEntry

	// Protected lists annotation IDs carrying the protect flag.
	Protected []uint16
}

// LayerEntry is one layer's ACL override.
type LayerEntry struct {
	ID        uint16
	Locked    bool
	Tier      uint8
	Exclusive []uint8
}
