package radix

import (
	"bytes"
	"iter"
)

// Union returns an iterator over the keys present in s, other, or both,
// in ascending order with each key yielded once. Both sets are walked
// lazily in lockstep, nothing is materialised.
func (s *Set) Union(other *Set) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		nextA, stopA := iter.Pull(s.All())
		defer stopA()
		nextB, stopB := iter.Pull(other.All())
		defer stopB()

		a, aok := nextA()
		b, bok := nextB()
		for aok && bok {
			switch c := bytes.Compare(a, b); {
			case c < 0:
				if !yield(a) {
					return
				}
				a, aok = nextA()
			case c > 0:
				if !yield(b) {
					return
				}
				b, bok = nextB()
			default:
				if !yield(a) {
					return
				}
				a, aok = nextA()
				b, bok = nextB()
			}
		}
		for ; aok; a, aok = nextA() {
			if !yield(a) {
				return
			}
		}
		for ; bok; b, bok = nextB() {
			if !yield(b) {
				return
			}
		}
	}
}

// Intersection returns an iterator over the keys present in both s and
// other, in ascending order. Both sets are walked lazily in lockstep.
func (s *Set) Intersection(other *Set) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		nextA, stopA := iter.Pull(s.All())
		defer stopA()
		nextB, stopB := iter.Pull(other.All())
		defer stopB()

		a, aok := nextA()
		b, bok := nextB()
		for aok && bok {
			switch c := bytes.Compare(a, b); {
			case c < 0:
				a, aok = nextA()
			case c > 0:
				b, bok = nextB()
			default:
				if !yield(a) {
					return
				}
				a, aok = nextA()
				b, bok = nextB()
			}
		}
	}
}
