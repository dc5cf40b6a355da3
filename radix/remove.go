package radix

import (
	"bytes"
)

// remove deletes key's value from the tree rooted at n, returning it.
// After clearing the value it re-establishes the compression invariant
// along the descent path: nodes left valueless and childless are
// detached, and a node left valueless with a single child is merged with
// that child. The root is exempt, it may hold neither value nor children.
func (n *node[V]) remove(key []byte) (removed V, ok bool) {
	type crumb struct {
		parent *node[V]
		idx    int
	}
	// One crumb per traversed edge, innermost last.
	var stack []crumb

	cur, rem := n, key
	for len(rem) > 0 {
		i, found := cur.findChild(rem[0])
		if !found {
			return removed, false
		}
		child := cur.children[i]
		if len(rem) < len(child.label) || !bytes.Equal(rem[:len(child.label)], child.label) {
			return removed, false
		}
		stack = append(stack, crumb{cur, i})
		cur, rem = child, rem[len(child.label):]
	}
	if !cur.hasValue {
		return removed, false
	}
	removed = cur.clearValue()

	// Walk back toward the root. Each detach may leave the node above
	// valueless with one child, so the cascade continues until a node
	// still earns its place.
	for i := len(stack) - 1; i >= 0; i-- {
		parent, idx := stack[i].parent, stack[i].idx
		child := parent.children[idx]
		if child.hasValue {
			break
		}
		switch len(child.children) {
		case 0:
			parent.removeChild(idx)
		case 1:
			child.mergeChild()
			return removed, true
		default:
			return removed, true
		}
	}
	return removed, true
}
