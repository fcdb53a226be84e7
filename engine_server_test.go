package canvasacl

import (
	"testing"

	"github.com/inklet/canvasacl/message"
	"github.com/inklet/canvasacl/permission"
)

func TestJoinAuthenticatedFlag(t *testing.T) {
	e := newTestEngine(t)

	mustFilter(t, e, message.Join{User: 5, Name: "alice", Authenticated: true}, true, ChangeUsers)
	if e.Tier(5) != permission.TierAuthenticated {
		t.Fatalf("Tier(5) = %v, want authenticated", e.Tier(5))
	}

	// An unauthenticated join changes nothing.
	mustFilter(t, e, message.Join{User: 6, Name: "guest"}, true, 0)
	if e.Tier(6) != permission.TierGuest {
		t.Fatalf("Tier(6) = %v, want guest", e.Tier(6))
	}
}

func TestSessionOwnerReplacesOperators(t *testing.T) {
	e := newTestEngine(t)

	mustFilter(t, e, message.SessionOwner{Users: []message.UserID{1, 2}}, true, ChangeUsers)
	if !e.IsOperator(1) || !e.IsOperator(2) {
		t.Fatal("listed users should be operators")
	}

	// The replacement is wholesale, not additive.
	mustFilter(t, e, message.SessionOwner{Users: []message.UserID{3}}, true, ChangeUsers)
	if e.IsOperator(1) || e.IsOperator(2) {
		t.Fatal("previous operators should be dropped")
	}
	if !e.IsOperator(3) {
		t.Fatal("new operator missing")
	}
}

func TestTrustedUsersReplacesTrusted(t *testing.T) {
	e := newTestEngine(t)

	mustFilter(t, e, message.TrustedUsers{Users: []message.UserID{10, 11}}, true, ChangeUsers)
	mustFilter(t, e, message.TrustedUsers{Users: []message.UserID{12}}, true, ChangeUsers)

	users := e.Users()
	if users.Trusted.Has(10) || users.Trusted.Has(11) {
		t.Fatal("previous trusted users should be dropped")
	}
	if !users.Trusted.Has(12) {
		t.Fatal("new trusted user missing")
	}
}

func TestChatMessagesHaveNoPermissionEffect(t *testing.T) {
	e := newTestEngine(t)

	mustFilter(t, e, message.Chat{User: 5, Text: "hi"}, true, 0)
	mustFilter(t, e, message.PrivateChat{User: 5, Target: 6, Text: "psst"}, true, 0)
	mustFilter(t, e, message.SoftReset{User: 0}, true, 0)
}
