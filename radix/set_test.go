package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setOf builds a Set from string keys.
func setOf(keys ...string) *Set {
	s := NewSet()
	for _, k := range keys {
		s.Insert([]byte(k))
	}
	return s
}

func TestSetInsertContains(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Insert([]byte("abc")))
	assert.True(t, s.Insert([]byte("abb")))
	assert.True(t, s.Insert([]byte("ab")))
	// a second insert of a member reports nothing added
	assert.False(t, s.Insert([]byte("abc")))
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Contains([]byte("ab")))
	assert.True(t, s.Contains([]byte("abb")))
	assert.True(t, s.Contains([]byte("abc")))

	// branch structure alone is not membership
	assert.False(t, s.Contains([]byte("a")))
	assert.False(t, s.Contains([]byte("abd")))
	assert.False(t, s.Contains([]byte("")))

	assert.True(t, s.Insert(nil))
	assert.True(t, s.Contains([]byte("")))
	assert.Equal(t, 4, s.Len())
}

func TestSetDelete(t *testing.T) {
	s := setOf("ab", "abc", "abd")

	assert.True(t, s.Delete([]byte("abc")))
	assert.False(t, s.Delete([]byte("abc")))
	assert.False(t, s.Delete([]byte("zz")))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains([]byte("abc")))
	assert.True(t, s.Contains([]byte("ab")))
	assert.True(t, s.Contains([]byte("abd")))
}

func TestSetAllOrdered(t *testing.T) {
	s := setOf("cad", "ab", "c", "abb", "ca")
	assert.Equal(t, []string{"ab", "abb", "c", "ca", "cad"}, keyStrings(s.All()))
	assert.Equal(t, []string{"c", "ca", "cad"}, keyStrings(s.AllWithPrefix([]byte("c"))))
	assert.Nil(t, keyStrings(s.AllWithPrefix([]byte("x"))))
}

func TestSetZeroValueUsable(t *testing.T) {
	var s Set
	assert.True(t, s.IsEmpty())
	s.Insert([]byte("x"))
	assert.Equal(t, 1, s.Len())
}

func TestCollectSet(t *testing.T) {
	a := setOf("ab", "abc", "b")
	b := CollectSet(a.All())
	assert.Equal(t, keyStrings(a.All()), keyStrings(b.All()))

	// collected set is independent
	b.Insert([]byte("zz"))
	assert.False(t, a.Contains([]byte("zz")))
}

func TestSetIntersection(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{"partial overlap", []string{"ab", "abc", "abd"}, []string{"ab", "abc", "c"}, []string{"ab", "abc"}},
		{"disjoint", []string{"ab", "abc"}, []string{"x", "y"}, nil},
		{"identical", []string{"ab", "abc"}, []string{"ab", "abc"}, []string{"ab", "abc"}},
		{"one empty", []string{"ab"}, nil, nil},
		{"both empty", nil, nil, nil},
		{"subset", []string{"a", "b", "c", "d"}, []string{"b", "d"}, []string{"b", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setOf(tt.a...)
			b := setOf(tt.b...)
			got := keyStrings(a.Intersection(b))
			assert.Equal(t, tt.want, got)
			// intersection commutes
			assert.Equal(t, tt.want, keyStrings(b.Intersection(a)))
		})
	}
}

func TestSetUnion(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{"partial overlap", []string{"ab", "abc"}, []string{"abc", "abd"}, []string{"ab", "abc", "abd"}},
		{"interleaved", []string{"a", "c", "e"}, []string{"b", "d"}, []string{"a", "b", "c", "d", "e"}},
		{"disjoint runs", []string{"a", "b"}, []string{"y", "z"}, []string{"a", "b", "y", "z"}},
		{"identical", []string{"ab", "abc"}, []string{"ab", "abc"}, []string{"ab", "abc"}},
		{"one empty", []string{"ab"}, nil, []string{"ab"}},
		{"both empty", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setOf(tt.a...)
			b := setOf(tt.b...)
			assert.Equal(t, tt.want, keyStrings(a.Union(b)))
			// union commutes
			assert.Equal(t, tt.want, keyStrings(b.Union(a)))
		})
	}
}

func TestSetUnionWithSelf(t *testing.T) {
	a := setOf("ab", "abc")
	assert.Equal(t, []string{"ab", "abc"}, keyStrings(a.Union(a)))
	assert.Equal(t, []string{"ab", "abc"}, keyStrings(a.Intersection(a)))
}

func TestSetOpsAreLazy(t *testing.T) {
	a := setOf("ab")
	b := setOf("ac")
	union := a.Union(b)

	// members added after the sequence is built still show up, the sets
	// are only walked when ranging starts
	a.Insert([]byte("aa"))
	assert.Equal(t, []string{"aa", "ab", "ac"}, keyStrings(union))
}

func TestSetOpsStopEarly(t *testing.T) {
	a := setOf("a", "b", "c")
	b := setOf("b", "c", "d")

	var got []string
	for k := range a.Union(b) {
		got = append(got, string(k))
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, got)

	got = nil
	for k := range a.Intersection(b) {
		got = append(got, string(k))
		break
	}
	require.Equal(t, []string{"b"}, got)
}
