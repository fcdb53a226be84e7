package canvasacl

import (
	"sort"

	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
	"github.com/inklet/canvasacl/session"
)

// Snapshot captures the engine's complete permission state in the
// portable form the session store persists. Layer and annotation sections
// are sorted by ID so identical state always yields identical bytes.
func (e *Engine) Snapshot() session.Snapshot {
	if e == nil {
		return session.Snapshot{}
	}

	snap := session.Snapshot{
		Operators:     e.users.Operators.Members(),
		Trusted:       e.users.Trusted.Members(),
		Authenticated: e.users.Authenticated.Members(),
		Locked:        e.users.Locked.Members(),
		AllLocked:     e.users.AllLocked,
		FeatureTiers:  e.features.Bytes(),
	}

	if len(e.layers) > 0 {
		snap.Layers = make([]session.LayerEntry, 0, len(e.layers))
		for id, acl := range e.layers {
			snap.Layers = append(snap.Layers, session.LayerEntry{
				ID:        uint16(id),
				Locked:    acl.Locked,
				Tier:      uint8(acl.Tier),
				Exclusive: acl.Exclusive.Members(),
			})
		}
		sort.Slice(snap.Layers, func(i, j int) bool {
			return snap.Layers[i].ID < snap.Layers[j].ID
		})
	}

	if len(e.protected) > 0 {
		snap.Protected = make([]uint16, 0, len(e.protected))
		for id := range e.protected {
			snap.Protected = append(snap.Protected, uint16(id))
		}
		sort.Slice(snap.Protected, func(i, j int) bool {
			return snap.Protected[i] < snap.Protected[j]
		})
	}

	return snap
}

// RestoreSnapshot replaces all permission state with the snapshot's.
// Tier bytes outside the valid range degrade to guest, matching the wire
// decode rule.
func (e *Engine) RestoreSnapshot(snap session.Snapshot) {
	if e == nil {
		return
	}

	e.users = UserACLs{
		Operators:     permission.UserSetOf(snap.Operators...),
		Trusted:       permission.UserSetOf(snap.Trusted...),
		Authenticated: permission.UserSetOf(snap.Authenticated...),
		Locked:        permission.UserSetOf(snap.Locked...),
		AllLocked:     snap.AllLocked,
	}
	e.features = permission.FeatureTiersFromBytes(snap.FeatureTiers)

	e.layers = make(map[message.LayerID]LayerACL, len(snap.Layers))
	for _, entry := range snap.Layers {
		e.layers[message.LayerID(entry.ID)] = LayerACL{
			Locked:    entry.Locked,
			Tier:      permission.TierFromByte(entry.Tier),
			Exclusive: permission.UserSetOf(entry.Exclusive...),
		}
	}

	e.protected = make(map[message.AnnotationID]struct{}, len(snap.Protected))
	for _, id := range snap.Protected {
		e.protected[message.AnnotationID(id)] = struct{}{}
	}
}
