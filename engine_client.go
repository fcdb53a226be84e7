package canvasacl

import (
	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
)

// handleClient evaluates client metadata messages. Each variant carries
// its own authorization rule; denied messages leave state untouched.
func (e *Engine) handleClient(msg message.ClientMessage) (bool, ChangeMask) {
	switch m := msg.(type) {
	case message.Interval, message.MovePointer, message.Marker:
		// Telemetry, only meaningful in recordings.
		return true, 0

	case message.LaserTrail:
		return e.users.Tier(m.User).Satisfies(e.features.Laser), 0

	case message.UserACL:
		if !e.users.IsOperator(m.User) {
			return false, 0
		}
		e.users.Locked = userSetOf(m.Locked)
		return true, ChangeUsers

	case message.LayerACL:
		return e.applyLayerACL(m)

	case message.FeatureAccessLevels:
		if !e.users.IsOperator(m.User) {
			return false, 0
		}
		e.features = permission.FeatureTiersFromBytes(m.Tiers)
		return true, ChangeFeatures

	case message.DefaultLayer:
		return e.users.IsOperator(m.User), 0

	case message.Filtered:
		// Already rejected once; stays rejected.
		return false, 0

	default:
		return false, 0
	}
}

// applyLayerACL validates and applies a layer ACL change. A request for
// the default settings removes the entry, so "no restriction" has exactly
// one representation.
func (e *Engine) applyLayerACL(m message.LayerACL) (bool, ChangeMask) {
	tier := e.users.Tier(m.User)
	allowed := tier.Satisfies(e.features.EditLayers) ||
		(tier.Satisfies(e.features.OwnLayers) && m.Layer.Creator() == m.User)
	if !allowed {
		return false, 0
	}

	entry := LayerACL{
		Locked:    m.Locked,
		Tier:      permission.TierFromByte(uint8(m.Tier)),
		Exclusive: userSetOf(m.Exclusive),
	}

	if entry.isDefault() {
		if _, ok := e.layers[m.Layer]; !ok {
			return true, 0
		}
		delete(e.layers, m.Layer)
		return true, ChangeLayers
	}

	e.layers[m.Layer] = entry
	return true, ChangeLayers
}
