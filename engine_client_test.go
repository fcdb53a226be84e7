package canvasacl

import (
	"testing"

	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
)

func TestTelemetryAlwaysAllowed(t *testing.T) {
	e := newTestEngine(t)

	mustFilter(t, e, message.Interval{User: 9, Millis: 100}, true, 0)
	mustFilter(t, e, message.MovePointer{User: 9}, true, 0)
	mustFilter(t, e, message.Marker{User: 9}, true, 0)
}

func TestLaserTrailTierGate(t *testing.T) {
	e := newTestEngine(t)

	// Default laser threshold is guest.
	mustFilter(t, e, message.LaserTrail{User: 5}, true, 0)

	tiers := permission.DefaultFeatureTiers()
	tiers.Laser = permission.TierTrusted
	mustFilter(t, e, message.FeatureAccessLevels{User: 0, Tiers: tiers.Bytes()}, true, ChangeFeatures)

	mustFilter(t, e, message.LaserTrail{User: 5}, false, 0)
	mustFilter(t, e, message.TrustedUsers{Users: []message.UserID{5}}, true, ChangeUsers)
	mustFilter(t, e, message.LaserTrail{User: 5}, true, 0)
}

func TestUserACLOperatorOnly(t *testing.T) {
	e := newTestEngine(t)

	mustFilter(t, e, message.UserACL{User: 5, Locked: []message.UserID{6}}, false, 0)
	if e.Users().Locked.Has(6) {
		t.Fatal("denied lock-list replace must not mutate state")
	}

	mustFilter(t, e, message.UserACL{User: 0, Locked: []message.UserID{6}}, true, ChangeUsers)
	if !e.Users().Locked.Has(6) {
		t.Fatal("lock-list replace did not apply")
	}
}

func TestFeatureAccessLevelsOperatorOnly(t *testing.T) {
	e := newTestEngine(t)

	tiers := permission.DefaultFeatureTiers()
	tiers.Undo = permission.TierOperator

	mustFilter(t, e, message.FeatureAccessLevels{User: 5, Tiers: tiers.Bytes()}, false, 0)
	if e.FeatureTiers().Undo != permission.TierGuest {
		t.Fatal("denied reconfiguration must not mutate the tier table")
	}

	mustFilter(t, e, message.FeatureAccessLevels{User: 0, Tiers: tiers.Bytes()}, true, ChangeFeatures)
	if e.FeatureTiers().Undo != permission.TierOperator {
		t.Fatal("reconfiguration did not apply")
	}
}

func TestFeatureAccessLevelsClampsTiers(t *testing.T) {
	e := newTestEngine(t)

	var raw [permission.FeatureCount]uint8
	for i := range raw {
		raw[i] = 200
	}
	mustFilter(t, e, message.FeatureAccessLevels{User: 0, Tiers: raw}, true, ChangeFeatures)

	if e.FeatureTiers().PutImage != permission.TierGuest {
		t.Fatal("out-of-range tier byte should decode to guest")
	}
}

func TestLayerACLAuthorization(t *testing.T) {
	e := newTestEngine(t)

	// Creator under the default own-layer tier may restrict its own layer.
	mustFilter(t, e, message.LayerACL{User: 5, Layer: 0x0500, Locked: true}, true, ChangeLayers)

	// A guest cannot touch someone else's layer.
	mustFilter(t, e, message.LayerACL{User: 7, Layer: 0x0500, Locked: false}, false, 0)
	if !e.IsLayerLockedFor(7, 0x0500) {
		t.Fatal("denied ACL change must not clear the lock")
	}

	// An operator can.
	makeOperator(t, e, 1)
	mustFilter(t, e, message.LayerACL{User: 1, Layer: 0x0500, Locked: false}, true, ChangeLayers)
	if e.IsLayerLockedFor(7, 0x0500) {
		t.Fatal("operator ACL change did not apply")
	}
}

func TestLayerACLDefaultRemovesEntry(t *testing.T) {
	e := newTestEngine(t)
	makeOperator(t, e, 1)

	mustFilter(t, e, message.LayerACL{User: 1, Layer: 0x0100, Locked: true}, true, ChangeLayers)

	// Default settings remove the entry.
	mustFilter(t, e, message.LayerACL{User: 1, Layer: 0x0100}, true, ChangeLayers)
	if len(e.Layers()) != 0 {
		t.Fatal("default ACL settings should remove the entry")
	}

	// Removing an absent entry allows without reporting a change.
	mustFilter(t, e, message.LayerACL{User: 1, Layer: 0x0100}, true, 0)
}

func TestLayerACLExclusiveSet(t *testing.T) {
	e := newTestEngine(t)
	makeOperator(t, e, 1)

	mustFilter(t, e, message.LayerACL{
		User:      1,
		Layer:     0x0100,
		Exclusive: []message.UserID{5},
	}, true, ChangeLayers)

	if e.IsLayerLockedFor(5, 0x0100) {
		t.Fatal("exclusive member should not be locked out")
	}
	if !e.IsLayerLockedFor(6, 0x0100) {
		t.Fatal("non-member should be locked out")
	}
	mustFilter(t, e, message.LayerACL{
		User:      1,
		Layer:     0x0100,
		Locked:    true,
		Exclusive: []message.UserID{5},
	}, true, ChangeLayers)
	if !e.IsLayerLockedFor(5, 0x0100) {
		t.Fatal("hard lock should apply to exclusive members too")
	}
}

func TestLayerACLTierRequirement(t *testing.T) {
	e := newTestEngine(t)
	makeOperator(t, e, 1)
	mustFilter(t, e, message.TrustedUsers{Users: []message.UserID{5}}, true, ChangeUsers)

	mustFilter(t, e, message.LayerACL{
		User:  1,
		Layer: 0x0100,
		Tier:  permission.TierTrusted,
	}, true, ChangeLayers)

	if e.IsLayerLockedFor(5, 0x0100) {
		t.Fatal("trusted user should satisfy a trusted-tier layer")
	}
	if !e.IsLayerLockedFor(7, 0x0100) {
		t.Fatal("guest should not satisfy a trusted-tier layer")
	}
}

func TestDefaultLayerOperatorOnly(t *testing.T) {
	e := newTestEngine(t)

	mustFilter(t, e, message.DefaultLayer{User: 5, Layer: 0x0100}, false, 0)
	mustFilter(t, e, message.DefaultLayer{User: 0, Layer: 0x0100}, true, 0)
}

func TestFilteredAlwaysDenied(t *testing.T) {
	e := newTestEngine(t)
	makeOperator(t, e, 1)

	mustFilter(t, e, message.Filtered{User: 1}, false, 0)
}
