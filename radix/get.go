package radix

import (
	"bytes"
)

// lookup returns the node whose path from n spells key exactly, or nil.
// The returned node may be a valueless branch point, so callers decide
// presence with hasValue. Point lookups require every traversed label to
// match in full; a key that ends partway along an edge is not stored.
func (n *node[V]) lookup(key []byte) *node[V] {
	cur, rem := n, key
	for len(rem) > 0 {
		i, ok := cur.findChild(rem[0])
		if !ok {
			return nil
		}
		child := cur.children[i]
		if len(rem) < len(child.label) || !bytes.Equal(rem[:len(child.label)], child.label) {
			return nil
		}
		cur, rem = child, rem[len(child.label):]
	}
	return cur
}
