package radix

import (
	"bytes"
)

// insert descends from n matching key against edge labels, then stores
// value at the terminal node, creating or splitting nodes as required.
// prev and replaced report any value the key already had.
func (n *node[V]) insert(key []byte, value V) (prev V, replaced bool) {
	cur, rem := n, key
	for len(rem) > 0 {
		i, ok := cur.findChild(rem[0])
		if !ok {
			// No child shares the first byte. The whole remainder
			// becomes one leaf edge.
			leaf := &node[V]{label: bytes.Clone(rem)}
			leaf.setValue(value)
			cur.insertChild(i, leaf)
			return prev, false
		}
		child := cur.children[i]
		lcp := commonPrefixLen(rem, child.label)
		if lcp < len(child.label) {
			cur.splitChild(i, lcp, rem, value)
			return prev, false
		}
		// Full label matched, keep descending.
		cur, rem = child, rem[lcp:]
	}
	return cur.setValue(value)
}

// splitChild splits the edge to child i at offset lcp, with
// 0 <= lcp < len(child.label). A new intermediate node takes the matched
// part of the label and adopts the old child, whose label is trimmed to
// the unmatched suffix. The key remainder rem either ends exactly at the
// intermediate (lcp == len(rem)), which then holds value, or its
// unmatched tail hangs off the intermediate as a second leaf.
//
// The intermediate's label and the trimmed child label share the old
// backing array. That is safe because labels are never appended to in
// place, only replaced wholesale.
func (n *node[V]) splitChild(i, lcp int, rem []byte, value V) {
	child := n.children[i]

	inter := &node[V]{
		label:    child.label[:lcp],
		children: []*node[V]{child},
	}
	child.label = child.label[lcp:]
	n.children[i] = inter

	if lcp == len(rem) {
		inter.setValue(value)
		return
	}

	leaf := &node[V]{label: bytes.Clone(rem[lcp:])}
	leaf.setValue(value)
	// The leaf and the trimmed child differ at their first byte, or the
	// common prefix would have been longer.
	j, _ := inter.findChild(rem[lcp])
	inter.insertChild(j, leaf)
}
