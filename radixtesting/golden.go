package radixtesting

import (
	"bytes"
	"fmt"
	"slices"
)

// GoldMap is a simple and slow ordered map, implemented as an unordered
// slice of keys and values, used as the golden reference in differential
// tests of the radix containers.
type GoldMap[V any] []GoldMapItem[V]

type GoldMapItem[V any] struct {
	Key []byte
	Val V
}

func (g GoldMapItem[V]) String() string {
	return fmt.Sprintf("(%q, %v)", g.Key, g.Val)
}

func (t *GoldMap[V]) Insert(key []byte, val V) {
	for i, item := range *t {
		if bytes.Equal(item.Key, key) {
			(*t)[i].Val = val // de-dupe
			return
		}
	}
	*t = append(*t, GoldMapItem[V]{bytes.Clone(key), val})
}

func (t *GoldMap[V]) Delete(key []byte) (exists bool) {
	for i, item := range *t {
		if bytes.Equal(item.Key, key) {
			*t = slices.Delete(*t, i, i+1)
			return true
		}
	}
	return false
}

func (t GoldMap[V]) Get(key []byte) (val V, ok bool) {
	for _, item := range t {
		if bytes.Equal(item.Key, key) {
			return item.Val, true
		}
	}
	return val, false
}

func (t *GoldMap[V]) Update(key []byte, cb func(V, bool) V) (val V) {
	for i, item := range *t {
		if bytes.Equal(item.Key, key) {
			val = cb(item.Val, true)
			(*t)[i].Val = val
			return val
		}
	}
	val = cb(val, false)
	*t = append(*t, GoldMapItem[V]{bytes.Clone(key), val})
	return val
}

// AllSorted returns the entries in ascending byte lexicographic key
// order.
func (t GoldMap[V]) AllSorted() []GoldMapItem[V] {
	result := slices.Clone(t)
	slices.SortFunc(result, func(a, b GoldMapItem[V]) int {
		return bytes.Compare(a.Key, b.Key)
	})
	return result
}

// KeysSorted returns the keys in ascending byte lexicographic order.
func (t GoldMap[V]) KeysSorted() [][]byte {
	result := make([][]byte, 0, len(t))
	for _, item := range t {
		result = append(result, item.Key)
	}
	slices.SortFunc(result, bytes.Compare)
	return result
}

// KeysWithPrefixSorted returns the keys beginning with prefix, in
// ascending byte lexicographic order.
func (t GoldMap[V]) KeysWithPrefixSorted(prefix []byte) [][]byte {
	var result [][]byte
	for _, item := range t {
		if bytes.HasPrefix(item.Key, prefix) {
			result = append(result, item.Key)
		}
	}
	slices.SortFunc(result, bytes.Compare)
	return result
}
