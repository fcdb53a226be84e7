package canvasacl

// ChangeMask reports which categories of permission state a filtered
// message moved, so a presentation layer knows what to re-fetch. Canvas
// commands never surface mask bits, even when they trim incidental
// bookkeeping state.
type ChangeMask uint32

const (
	// ChangeUsers marks a change to the operator, trusted,
	// authenticated, or locked membership sets.
	ChangeUsers ChangeMask = 0x01
	// ChangeLayers marks a change to the per-layer ACL registry.
	ChangeLayers ChangeMask = 0x02
	// ChangeFeatures marks a replacement of the feature tier table.
	ChangeFeatures ChangeMask = 0x04
)

// Has reports whether all bits of the given mask are set.
func (c ChangeMask) Has(mask ChangeMask) bool {
	return c&mask == mask
}
