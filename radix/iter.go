package radix

import (
	"bytes"
	"iter"
)

// frame is one pending subtree in a depth first walk. The node's label
// extends the shared path buffer at offset pathLen, so popping a frame
// truncates the path back to where this subtree branched off.
type frame[V any] struct {
	pathLen int
	n       *node[V]
}

// walkFrom visits every value holding node in the subtree rooted at
// start, in ascending byte lexicographic key order. base is the key
// material spelled above start. The walk is iterative, the stack holds
// at most one frame per sibling along the current path.
//
// The path passed to visit is a shared buffer, only valid for the
// duration of the call. visit returning false stops the walk.
func walkFrom[V any](start *node[V], base []byte, visit func(path []byte, v V) bool) {
	path := bytes.Clone(base)
	stack := []frame[V]{{len(base), start}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		path = append(path[:f.pathLen], f.n.label...)
		// A node's value sorts before everything in its subtree, and
		// children are pushed in reverse so the smallest first byte is
		// popped first.
		for i := len(f.n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame[V]{len(path), f.n.children[i]})
		}
		if f.n.hasValue && !visit(path, f.n.value) {
			return
		}
	}
}

// All returns an iterator over all entries in ascending byte
// lexicographic key order. Yielded keys are fresh copies owned by the
// consumer. The sequence may be ranged over more than once, each range
// walks the map as it is at that moment.
func (m *Map[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		walkFrom(&m.root, nil, func(path []byte, v V) bool {
			return yield(bytes.Clone(path), v)
		})
	}
}

// Keys returns an iterator over all keys in ascending order. Yielded
// keys are fresh copies owned by the consumer.
func (m *Map[V]) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		walkFrom(&m.root, nil, func(path []byte, _ V) bool {
			return yield(bytes.Clone(path))
		})
	}
}

// Values returns an iterator over all values, in ascending order of
// their keys.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		walkFrom(&m.root, nil, func(_ []byte, v V) bool {
			return yield(v)
		})
	}
}

// AllWithPrefix returns an iterator over the entries whose keys begin
// with prefix, in ascending key order. An empty prefix yields every
// entry. The descent to the covering subtree happens when iteration
// starts, so ranging twice sees updates in between.
func (m *Map[V]) AllWithPrefix(prefix []byte) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		start, consumed, ok := m.root.findPrefix(prefix)
		if !ok {
			return
		}
		walkFrom(start, prefix[:consumed], func(path []byte, v V) bool {
			return yield(bytes.Clone(path), v)
		})
	}
}

// KeysWithPrefix returns an iterator over the keys beginning with
// prefix, in ascending order.
func (m *Map[V]) KeysWithPrefix(prefix []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		start, consumed, ok := m.root.findPrefix(prefix)
		if !ok {
			return
		}
		walkFrom(start, prefix[:consumed], func(path []byte, _ V) bool {
			return yield(bytes.Clone(path))
		})
	}
}

// ValuesWithPrefix returns an iterator over the values of keys beginning
// with prefix, in ascending order of those keys.
func (m *Map[V]) ValuesWithPrefix(prefix []byte) iter.Seq[V] {
	return func(yield func(V) bool) {
		start, _, ok := m.root.findPrefix(prefix)
		if !ok {
			return
		}
		walkFrom(start, nil, func(_ []byte, v V) bool {
			return yield(v)
		})
	}
}
