package radix

// findPrefix locates the topmost node whose subtree holds exactly the
// keys beginning with prefix. consumed is how much of prefix is spelled
// above the returned node, so the key material for a walk from it is
// prefix[:consumed] followed by its own label.
//
// A prefix may end partway along an edge label. The node under that edge
// still covers it: its label only ever extends the prefix. ok is false
// when the prefix diverges from every stored key, and no key can begin
// with it.
func (n *node[V]) findPrefix(prefix []byte) (start *node[V], consumed int, ok bool) {
	if len(prefix) == 0 {
		return n, 0, true
	}
	cur, rem := n, prefix
	for {
		i, found := cur.findChild(rem[0])
		if !found {
			return nil, 0, false
		}
		child := cur.children[i]
		lcp := commonPrefixLen(rem, child.label)
		if lcp == len(rem) {
			return child, consumed, true
		}
		if lcp < len(child.label) {
			return nil, 0, false
		}
		cur, rem = child, rem[lcp:]
		consumed += lcp
	}
}
