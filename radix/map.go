package radix

import (
	"iter"
)

// Map is an ordered map from byte sequence keys to values of type V,
// backed by a path compressed radix tree. Any byte sequence is a valid
// key, including the empty one. Keys are copied on insert, values are
// stored as given.
//
// The zero value is an empty map ready for use.
type Map[V any] struct {
	root node[V]
	size int
}

// NewMap returns a new empty map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{}
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map has no entries.
func (m *Map[V]) IsEmpty() bool {
	return m.size == 0
}

// Insert stores value under key and returns the value the key held
// before, if any. key is copied, the caller may reuse it.
func (m *Map[V]) Insert(key []byte, value V) (prev V, replaced bool) {
	prev, replaced = m.root.insert(key, value)
	if !replaced {
		m.size++
	}
	return prev, replaced
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key []byte) (V, bool) {
	if n := m.root.lookup(key); n != nil && n.hasValue {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[V]) Contains(key []byte) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and returns the value it held. Deleting an absent
// key leaves the map unchanged.
func (m *Map[V]) Delete(key []byte) (V, bool) {
	v, ok := m.root.remove(key)
	if ok {
		m.size--
	}
	return v, ok
}

// Update stores the value fn returns for key. fn receives the current
// value and whether the key was present, so counters and accumulators
// need only one call site. The stored value is returned.
func (m *Map[V]) Update(key []byte, fn func(v V, ok bool) V) V {
	v, ok := m.Get(key)
	v = fn(v, ok)
	m.Insert(key, v)
	return v
}

// Collect builds a map from an iterator of key value pairs. Later pairs
// win duplicate keys.
func Collect[V any](seq iter.Seq2[[]byte, V]) *Map[V] {
	m := NewMap[V]()
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}
