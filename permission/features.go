package permission

// FeatureCount is the number of independently gated features. The feature
// reconfiguration message carries exactly this many tier bytes, in the
// field order of [FeatureTiers].
const FeatureCount = 9

// FeatureTiers holds the minimum tier required for each gated capability.
//
// Field order matters: FeatureTiersFromBytes maps wire index i to the i-th
// field below, and a transposition would silently swap gating thresholds.
type FeatureTiers struct {
	// PutImage gates the PutImage command (cut & paste, move with
	// transform, fills that go through the image path).
	PutImage Tier

	// MoveRect gates selection moves without transformation.
	MoveRect Tier

	// Resize gates canvas resizing.
	Resize Tier

	// Background gates canvas background changes.
	Background Tier

	// EditLayers gates editing any layer's properties and reordering
	// layers.
	EditLayers Tier

	// OwnLayers gates creating and editing the user's own layers.
	OwnLayers Tier

	// CreateAnnotation gates creating new annotations.
	CreateAnnotation Tier

	// Laser gates the laser pointer tool.
	Laser Tier

	// Undo gates undo and redo.
	Undo Tier
}

// DefaultFeatureTiers returns the session defaults: canvas-wide operations
// (resize, background, editing arbitrary layers) are operator-only, every
// other feature is open to guests.
func DefaultFeatureTiers() FeatureTiers {
	return FeatureTiers{
		PutImage:         TierGuest,
		MoveRect:         TierGuest,
		Resize:           TierOperator,
		Background:       TierOperator,
		EditLayers:       TierOperator,
		OwnLayers:        TierGuest,
		CreateAnnotation: TierGuest,
		Laser:            TierGuest,
		Undo:             TierGuest,
	}
}

// FeatureTiersFromBytes decodes the nine wire tier values, clamping each
// unknown value to TierGuest.
func FeatureTiersFromBytes(b [FeatureCount]uint8) FeatureTiers {
	return FeatureTiers{
		PutImage:         TierFromByte(b[0]),
		MoveRect:         TierFromByte(b[1]),
		Resize:           TierFromByte(b[2]),
		Background:       TierFromByte(b[3]),
		EditLayers:       TierFromByte(b[4]),
		OwnLayers:        TierFromByte(b[5]),
		CreateAnnotation: TierFromByte(b[6]),
		Laser:            TierFromByte(b[7]),
		Undo:             TierFromByte(b[8]),
	}
}

// Bytes encodes the table back into wire order. It is the inverse of
// FeatureTiersFromBytes for in-range values.
func (f FeatureTiers) Bytes() [FeatureCount]uint8 {
	return [FeatureCount]uint8{
		uint8(f.PutImage),
		uint8(f.MoveRect),
		uint8(f.Resize),
		uint8(f.Background),
		uint8(f.EditLayers),
		uint8(f.OwnLayers),
		uint8(f.CreateAnnotation),
		uint8(f.Laser),
		uint8(f.Undo),
	}
}
