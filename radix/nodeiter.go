package radix

// nodeFrame is a frame for structural walks, which also track depth.
type nodeFrame[V any] struct {
	pathLen int
	depth   int
	n       *node[V]
}

// walkNodes visits every node in the subtree rooted at n, valued or not,
// parents before children and children in ascending first byte order.
// depth counts edges from n, path spells the key up to and including the
// visited node's label and is a shared buffer, valid only during the
// call. visit returning false stops the walk.
//
// Structural tooling, the dumper and the invariant checks in the tests,
// is built on this. Value enumeration goes through walkFrom.
func (n *node[V]) walkNodes(visit func(depth int, path []byte, n *node[V]) bool) {
	var path []byte
	stack := []nodeFrame[V]{{0, 0, n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		path = append(path[:f.pathLen], f.n.label...)
		if !visit(f.depth, path, f.n) {
			return
		}
		for i := len(f.n.children) - 1; i >= 0; i-- {
			stack = append(stack, nodeFrame[V]{len(path), f.depth + 1, f.n.children[i]})
		}
	}
}

// numNodes counts the nodes in the subtree, the root included.
func (n *node[V]) numNodes() int {
	count := 0
	n.walkNodes(func(int, []byte, *node[V]) bool {
		count++
		return true
	})
	return count
}
