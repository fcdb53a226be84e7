package canvasacl

import "github.com/inklet/canvasacl/message"

// handleCommand evaluates canvas commands. The session and per-user locks
// come first and deny regardless of command type or tier.
func (e *Engine) handleCommand(msg message.CommandMessage) bool {
	if e.users.AllLocked || e.users.Locked.Has(uint8(msg.Sender())) {
		e.metrics.Inc(MetricCommandDeniedLocked)
		return false
	}

	switch m := msg.(type) {
	case message.UndoPoint, message.PenUp:
		return true

	case message.CanvasResize:
		return e.users.Tier(m.User).Satisfies(e.features.Resize)

	case message.LayerCreate:
		if !e.users.IsOperator(m.User) && m.Layer.Creator() != m.User {
			// Layer ID prefixing is how ownership is attributed;
			// non-operators cannot claim another user's range.
			return false
		}
		tier := e.users.Tier(m.User)
		return tier.Satisfies(e.features.EditLayers) || tier.Satisfies(e.features.OwnLayers)

	case message.LayerAttributes:
		return e.canEditLayer(m.User, m.Layer)

	case message.LayerRetitle:
		return e.canEditLayer(m.User, m.Layer)

	case message.LayerOrder:
		return e.users.Tier(m.User).Satisfies(e.features.EditLayers)

	case message.LayerDelete:
		if !e.canEditLayer(m.User, m.Layer) {
			return false
		}
		delete(e.layers, m.Layer)
		return true

	case message.LayerVisibility:
		// Visibility is a local view toggle and is not gated.
		return true

	case message.PutImage:
		return e.users.Tier(m.User).Satisfies(e.features.PutImage) &&
			!e.IsLayerLockedFor(m.User, m.Layer)

	case message.FillRect:
		return e.users.Tier(m.User).Satisfies(e.features.PutImage) &&
			!e.IsLayerLockedFor(m.User, m.Layer)

	case message.MoveRect:
		return e.users.Tier(m.User).Satisfies(e.features.MoveRect) &&
			!e.IsLayerLockedFor(m.User, m.Layer)

	case message.DrawDabsClassic:
		return !e.IsLayerLockedFor(m.User, m.Layer)

	case message.DrawDabsPixel:
		return !e.IsLayerLockedFor(m.User, m.Layer)

	case message.DrawDabsPixelSquare:
		return !e.IsLayerLockedFor(m.User, m.Layer)

	case message.AnnotationCreate:
		return e.users.Tier(m.User).Satisfies(e.features.CreateAnnotation) &&
			(e.users.IsOperator(m.User) || m.ID.Creator() == m.User)

	case message.AnnotationReshape:
		return e.users.IsOperator(m.User) || m.ID.Creator() == m.User

	case message.AnnotationEdit:
		if !e.users.IsOperator(m.User) && m.ID.Creator() != m.User {
			return false
		}
		if m.Protect {
			e.protected[m.ID] = struct{}{}
		} else {
			delete(e.protected, m.ID)
		}
		return true

	case message.AnnotationDelete:
		if !e.users.IsOperator(m.User) && m.ID.Creator() != m.User {
			return false
		}
		delete(e.protected, m.ID)
		return true

	case message.PutTile:
		return e.users.IsOperator(m.User)

	case message.CanvasBackground:
		return e.users.Tier(m.User).Satisfies(e.features.Background)

	case message.Undo:
		return e.users.Tier(m.User).Satisfies(e.features.Undo)

	default:
		// A command variant without a rule is a bug in this package;
		// deny rather than let it through.
		return false
	}
}

// canEditLayer is the shared rule for layer attribute, retitle, and
// delete commands: either the edit-any-layer tier, or the own-layer tier
// combined with creatorship.
func (e *Engine) canEditLayer(user message.UserID, layer message.LayerID) bool {
	tier := e.users.Tier(user)
	if tier.Satisfies(e.features.EditLayers) {
		return true
	}
	return layer.Creator() == user && tier.Satisfies(e.features.OwnLayers)
}
