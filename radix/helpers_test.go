package radix

import (
	"iter"
	"testing"
)

// checkTree fails the test if a structural invariant is broken anywhere
// in m's tree: an empty label below the root, a valueless node with
// fewer than two children, or children out of first byte order.
func checkTree[V any](t *testing.T, m *Map[V]) {
	t.Helper()
	m.root.walkNodes(func(depth int, path []byte, n *node[V]) bool {
		if depth > 0 && !n.hasValue && len(n.children) < 2 {
			t.Errorf("valueless node with %d children at %q", len(n.children), path)
		}
		for i, c := range n.children {
			if len(c.label) == 0 {
				t.Errorf("empty child label under %q", path)
				return false
			}
			if i > 0 && n.children[i-1].label[0] >= c.label[0] {
				t.Errorf("children out of order at %q: %#x then %#x",
					path, n.children[i-1].label[0], c.label[0])
			}
		}
		return true
	})
}

// keyStrings drains a key sequence into strings, which compare cleanly
// in asserts regardless of nil versus empty slices.
func keyStrings(seq iter.Seq[[]byte]) []string {
	var keys []string
	for k := range seq {
		keys = append(keys, string(k))
	}
	return keys
}

func stringsOf(keys [][]byte) []string {
	var out []string
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}
