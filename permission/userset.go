package permission

import "math/bits"

// UserSet is a 256-bit membership set over the session user ID space.
// The zero value is the empty set. The uint8 index type bounds every
// operation to IDs 0-255, so a malformed ID can never touch unrelated bits.
type UserSet struct {
	A uint64
	B uint64
	C uint64
	D uint64
}

// UserSetOf builds a set containing exactly the given IDs, replacing
// nothing: it is the bulk "replace from list" constructor used by the
// operator, trusted and lock list messages.
func UserSetOf(ids ...uint8) UserSet {
	var s UserSet
	for _, id := range ids {
		s.Set(id)
	}
	return s
}

// Set adds the given user ID to the set.
func (s *UserSet) Set(id uint8) {
	switch {
	case id < 64:
		s.A |= 1 << id
	case id < 128:
		s.B |= 1 << (id - 64)
	case id < 192:
		s.C |= 1 << (id - 128)
	default:
		s.D |= 1 << (id - 192)
	}
}

// Clear removes the given user ID from the set.
func (s *UserSet) Clear(id uint8) {
	switch {
	case id < 64:
		s.A &^= 1 << id
	case id < 128:
		s.B &^= 1 << (id - 64)
	case id < 192:
		s.C &^= 1 << (id - 128)
	default:
		s.D &^= 1 << (id - 192)
	}
}

// Has reports whether the given user ID is a member.
func (s UserSet) Has(id uint8) bool {
	switch {
	case id < 64:
		return s.A&(1<<id) != 0
	case id < 128:
		return s.B&(1<<(id-64)) != 0
	case id < 192:
		return s.C&(1<<(id-128)) != 0
	default:
		return s.D&(1<<(id-192)) != 0
	}
}

// IsEmpty reports whether no user is a member.
func (s UserSet) IsEmpty() bool {
	return s.A == 0 && s.B == 0 && s.C == 0 && s.D == 0
}

// Count returns the number of members.
func (s UserSet) Count() int {
	return bits.OnesCount64(s.A) + bits.OnesCount64(s.B) +
		bits.OnesCount64(s.C) + bits.OnesCount64(s.D)
}

// Members returns the member IDs in ascending order. Intended for
// snapshots and presentation, not for hot-path checks.
func (s UserSet) Members() []uint8 {
	if s.IsEmpty() {
		return nil
	}
	members := make([]uint8, 0, s.Count())
	for i := 0; i < 256; i++ {
		if s.Has(uint8(i)) {
			members = append(members, uint8(i))
		}
	}
	return members
}
