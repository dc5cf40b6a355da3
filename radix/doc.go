// Package radix implements an ordered, mutable, in-memory associative
// container keyed by byte sequences, backed by a path compressed radix tree.
//
// # Why a radix tree
//
// Hash maps answer point lookups but cannot enumerate keys in order and
// cannot answer prefix queries without scanning everything. Ordered trees
// (red-black, btree) give ordered enumeration but store every key in full.
// For corpora whose keys share long common prefixes, storage paths, URLs,
// and namespaced identifiers being the canonical examples, a radix tree
// stores each shared prefix exactly once. The prefix becomes the path from
// the root, and a prefix query is a single descent followed by a subtree
// walk.
//
// # Structure
//
// Each edge of the tree is labelled with a byte sequence of length >= 1,
// not a single byte. A key is present when the concatenation of edge
// labels from the root to some node equals the key and that node holds a
// value. Nodes without values exist only as branch points.
//
// Two invariants define the shape, and every mutation restores them
// before returning:
//
//   - Child labels of a node begin with distinct bytes and are kept sorted
//     by that first byte, so locating a child is a binary search.
//   - Every node other than the root either holds a value or has at least
//     two children. A valueless node with a single child is merged with
//     that child, concatenating the labels.
//
// Together these guarantee the tree for a given key set is unique,
// regardless of insertion order, and that node count is bounded by twice
// the number of keys.
//
// The root is the only node with an empty label. It holds the value for
// the empty key, which is a valid key and sorts before every other key.
//
// # Ordering
//
// All enumeration is in ascending byte lexicographic key order: iterators
// walk the tree depth first, visiting a node's value before its children
// and children in first-byte order. Iteration allocates a single path
// buffer for the walk and extends or truncates it as the walk moves, so
// the cost of producing each key is proportional to its unshared suffix,
// not its length.
//
// # Mutability and ownership
//
// Map and Set copy any key bytes they retain, so callers may reuse or
// mutate key slices after Insert returns. Keys yielded by All and Keys
// are fresh copies owned by the consumer. Values are stored and returned
// as given.
//
// Containers are not safe for concurrent use. Readers may proceed
// concurrently with each other, but any mutation requires external
// synchronisation, exactly as for the built in map type.
package radix
