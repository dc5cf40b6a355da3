package radix

// node is a single tree node. The key it represents is the concatenation
// of the labels on the path from the root, including its own. label is
// empty only on the root.
//
// A node either holds a value (hasValue) or exists as a branch point with
// at least two children. Mutations restore that invariant before
// returning, so a valueless single-child node is never observable.
type node[V any] struct {
	label    []byte
	value    V
	hasValue bool
	children []*node[V]
}

// setValue stores v on n, returning the value it displaced, if any.
func (n *node[V]) setValue(v V) (prev V, replaced bool) {
	prev, replaced = n.value, n.hasValue
	n.value = v
	n.hasValue = true
	return prev, replaced
}

// clearValue removes n's value and returns it. The zero value is written
// back so the tree does not pin whatever V referenced.
func (n *node[V]) clearValue() V {
	v := n.value
	var zero V
	n.value = zero
	n.hasValue = false
	return v
}

// mergeChild absorbs n's sole child into n: the labels are concatenated
// and the child's value and children become n's. The caller must ensure n
// has exactly one child and no value.
func (n *node[V]) mergeChild() {
	child := n.children[0]

	// A fresh buffer of exactly the joined length. Appending to n.label
	// could scribble on a sibling's bytes if the slices share an array.
	label := make([]byte, 0, len(n.label)+len(child.label))
	label = append(label, n.label...)
	label = append(label, child.label...)

	n.label = label
	n.value = child.value
	n.hasValue = child.hasValue
	n.children = child.children
}
