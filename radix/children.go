package radix

import (
	"cmp"
	"slices"
)

// Child slices stay sorted by the first label byte, and labels are never
// empty below the root, so children[i].label[0] is always addressable and
// distinct. Everything here preserves that ordering.

// findChild locates the child whose label begins with b. When absent, the
// returned index is where such a child would be inserted.
func (n *node[V]) findChild(b byte) (int, bool) {
	return slices.BinarySearchFunc(n.children, b, func(c *node[V], b byte) int {
		return cmp.Compare(c.label[0], b)
	})
}

// insertChild places child at index i, shifting the tail up.
func (n *node[V]) insertChild(i int, child *node[V]) {
	n.children = slices.Insert(n.children, i, child)
}

// removeChild deletes the child at index i, shifting the tail down. The
// slot is zeroed so the subtree is collectable.
func (n *node[V]) removeChild(i int) {
	n.children = slices.Delete(n.children, i, i+1)
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b.
func commonPrefixLen(a, b []byte) int {
	limit := min(len(a), len(b))
	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}
	return i
}
