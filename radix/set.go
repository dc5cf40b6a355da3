package radix

import (
	"iter"
)

// Set is an ordered set of byte sequence keys, a Map with nothing
// attached to the keys. Any byte sequence is a valid member, including
// the empty one. Members are copied on insert.
//
// The zero value is an empty set ready for use.
type Set struct {
	m Map[struct{}]
}

// NewSet returns a new empty set.
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of members in the set.
func (s *Set) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Insert adds key to the set, reporting whether it was absent before.
// key is copied, the caller may reuse it.
func (s *Set) Insert(key []byte) bool {
	_, replaced := s.m.Insert(key, struct{}{})
	return !replaced
}

// Contains reports whether key is a member.
func (s *Set) Contains(key []byte) bool {
	return s.m.Contains(key)
}

// Delete removes key from the set, reporting whether it was present.
func (s *Set) Delete(key []byte) bool {
	_, ok := s.m.Delete(key)
	return ok
}

// All returns an iterator over the members in ascending byte
// lexicographic order. Yielded keys are fresh copies owned by the
// consumer.
func (s *Set) All() iter.Seq[[]byte] {
	return s.m.Keys()
}

// AllWithPrefix returns an iterator over the members beginning with
// prefix, in ascending order.
func (s *Set) AllWithPrefix(prefix []byte) iter.Seq[[]byte] {
	return s.m.KeysWithPrefix(prefix)
}

// CollectSet builds a set from an iterator of keys.
func CollectSet(seq iter.Seq[[]byte]) *Set {
	s := NewSet()
	for k := range seq {
		s.Insert(k)
	}
	return s
}
