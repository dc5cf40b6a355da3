package radix

import (
	"fmt"
	"io"
	"strings"
)

// String renders the tree structure for debugging: one node per line,
// indented two spaces per level. The root prints as ".", other nodes as
// their quoted edge label. Value nodes append "= value", branch points
// append their child count as "+n".
func (m *Map[V]) String() string {
	var sb strings.Builder
	m.dump(&sb)
	return sb.String()
}

// String renders the tree structure for debugging, in the same form as
// Map's. Members carry the empty struct, which prints as {}.
func (s *Set) String() string {
	return s.m.String()
}

func (m *Map[V]) dump(w io.Writer) {
	m.root.walkNodes(func(depth int, _ []byte, n *node[V]) bool {
		line := strings.Repeat("  ", depth)
		if depth == 0 {
			line += "."
		} else {
			line += fmt.Sprintf("%q", n.label)
		}
		if n.hasValue {
			line += fmt.Sprintf(" = %v", n.value)
		}
		if len(n.children) > 0 {
			line += fmt.Sprintf(" +%d", len(n.children))
		}
		fmt.Fprintln(w, line)
		return true
	})
}
