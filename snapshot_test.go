package canvasacl

import (
	"reflect"
	"testing"

	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
	"github.com/inklet/canvasacl/session"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	makeOperator(t, e, 1)
	mustFilter(t, e, message.TrustedUsers{Users: []message.UserID{2}}, true, ChangeUsers)
	mustFilter(t, e, message.Join{User: 3, Authenticated: true}, true, ChangeUsers)
	mustFilter(t, e, message.UserACL{User: 1, Locked: []message.UserID{4}}, true, ChangeUsers)
	mustFilter(t, e, message.LayerACL{
		User:      1,
		Layer:     0x0100,
		Locked:    true,
		Tier:      permission.TierTrusted,
		Exclusive: []message.UserID{1, 2},
	}, true, ChangeLayers)
	mustFilter(t, e, message.AnnotationEdit{User: 1, ID: 0x0101, Protect: true}, true, 0)
	e.SetAllLocked(true)

	tiers := permission.DefaultFeatureTiers()
	tiers.Undo = permission.TierTrusted
	// The session lock blocks commands, not client metadata.
	mustFilter(t, e, message.FeatureAccessLevels{User: 1, Tiers: tiers.Bytes()}, true, ChangeFeatures)

	snap := e.Snapshot()

	restored := newTestEngine(t)
	restored.RestoreSnapshot(snap)

	if !restored.IsOperator(1) {
		t.Fatal("operator membership lost")
	}
	if restored.Tier(2) != permission.TierTrusted {
		t.Fatal("trusted membership lost")
	}
	if restored.Tier(3) != permission.TierAuthenticated {
		t.Fatal("authenticated membership lost")
	}
	if !restored.Users().Locked.Has(4) {
		t.Fatal("locked membership lost")
	}
	if !restored.Users().AllLocked {
		t.Fatal("session lock flag lost")
	}
	if restored.FeatureTiers() != tiers {
		t.Fatal("feature tier table lost")
	}
	if !restored.IsLayerLockedFor(5, 0x0100) {
		t.Fatal("layer ACL entry lost")
	}
	if !restored.IsAnnotationProtected(0x0101) {
		t.Fatal("annotation protect flag lost")
	}

	// A restored engine snapshots back to identical bytes.
	if !reflect.DeepEqual(restored.Snapshot(), snap) {
		t.Fatal("restore then snapshot did not round trip")
	}
}

func TestSnapshotIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	makeOperator(t, e, 1)
	for _, layer := range []message.LayerID{0x0700, 0x0100, 0x0400} {
		mustFilter(t, e, message.LayerACL{User: 1, Layer: layer, Locked: true}, true, ChangeLayers)
	}

	snap := e.Snapshot()
	for i, want := range []uint16{0x0100, 0x0400, 0x0700} {
		if snap.Layers[i].ID != want {
			t.Fatalf("layer %d = %#x, want %#x", i, snap.Layers[i].ID, want)
		}
	}
}

func TestSnapshotEmptyEngine(t *testing.T) {
	e := newTestEngine(t)

	snap := e.Snapshot()
	if len(snap.Operators) != 0 || len(snap.Layers) != 0 || len(snap.Protected) != 0 {
		t.Fatal("fresh engine snapshot should be empty")
	}
	if snap.FeatureTiers != permission.DefaultFeatureTiers().Bytes() {
		t.Fatal("fresh engine snapshot should carry default tiers")
	}
}

func TestRestoreSnapshotClampsTiers(t *testing.T) {
	e := newTestEngine(t)

	var tiers [permission.FeatureCount]uint8
	tiers[0] = 99
	e.RestoreSnapshot(session.Snapshot{
		FeatureTiers: tiers,
		Layers: []session.LayerEntry{
			{ID: 0x0100, Tier: 42},
		},
	})

	if e.FeatureTiers().PutImage != permission.TierGuest {
		t.Fatal("out-of-range feature tier should clamp to guest")
	}
	if e.Layers()[0x0100].Tier != permission.TierGuest {
		t.Fatal("out-of-range layer tier should clamp to guest")
	}
}
