package message

// Name returns a stable lowercase identifier for the message's type, used
// in audit events and logs.
func Name(m Message) string {
	switch m.(type) {
	case ServerCommand:
		return "server_command"
	case Disconnect:
		return "disconnect"
	case Ping:
		return "ping"
	case Join:
		return "join"
	case Leave:
		return "leave"
	case SessionOwner:
		return "session_owner"
	case TrustedUsers:
		return "trusted_users"
	case Chat:
		return "chat"
	case PrivateChat:
		return "private_chat"
	case SoftReset:
		return "soft_reset"
	case Interval:
		return "interval"
	case LaserTrail:
		return "laser_trail"
	case MovePointer:
		return "move_pointer"
	case Marker:
		return "marker"
	case UserACL:
		return "user_acl"
	case LayerACL:
		return "layer_acl"
	case FeatureAccessLevels:
		return "feature_access_levels"
	case DefaultLayer:
		return "default_layer"
	case Filtered:
		return "filtered"
	case UndoPoint:
		return "undo_point"
	case CanvasResize:
		return "canvas_resize"
	case LayerCreate:
		return "layer_create"
	case LayerAttributes:
		return "layer_attributes"
	case LayerRetitle:
		return "layer_retitle"
	case LayerOrder:
		return "layer_order"
	case LayerDelete:
		return "layer_delete"
	case LayerVisibility:
		return "layer_visibility"
	case PutImage:
		return "put_image"
	case FillRect:
		return "fill_rect"
	case MoveRect:
		return "move_rect"
	case PenUp:
		return "pen_up"
	case AnnotationCreate:
		return "annotation_create"
	case AnnotationReshape:
		return "annotation_reshape"
	case AnnotationEdit:
		return "annotation_edit"
	case AnnotationDelete:
		return "annotation_delete"
	case PutTile:
		return "put_tile"
	case CanvasBackground:
		return "canvas_background"
	case DrawDabsClassic:
		return "draw_dabs_classic"
	case DrawDabsPixel:
		return "draw_dabs_pixel"
	case DrawDabsPixelSquare:
		return "draw_dabs_pixel_square"
	case Undo:
		return "undo"
	default:
		return "unknown"
	}
}

// Category returns the message's protocol category name.
func Category(m Message) string {
	switch m.(type) {
	case ControlMessage:
		return "control"
	case ServerMessage:
		return "server"
	case ClientMessage:
		return "client"
	case CommandMessage:
		return "command"
	default:
		return "unknown"
	}
}
