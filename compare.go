package gapbuffer

import (
	"cmp"
	"iter"
)

// at returns the element at logical index i without bounds checking.
// Callers guarantee 0 <= i < Len().
func (b *Buffer[T]) at(i int) T {
	return b.store[b.phys(i)]
}

// Equal reports whether both buffers hold the same elements in the same
// order. Gap position and capacity are irrelevant.
func (b *Buffer[T]) Equal(other *Buffer[T]) bool {
	if b.Len() != other.Len() {
		return false
	}
	for i := 0; i < b.Len(); i++ {
		if b.at(i) != other.at(i) {
			return false
		}
	}
	return true
}

// EqualSlice reports whether the buffer's elements match s pairwise.
func (b *Buffer[T]) EqualSlice(s []T) bool {
	if b.Len() != len(s) {
		return false
	}
	for i, v := range s {
		if b.at(i) != v {
			return false
		}
	}
	return true
}

// EqualSeq reports whether the buffer's elements match seq pairwise.
// seq may be any element sequence, including another buffer's Values.
// Unbounded sequences are safe: at most Len()+1 elements are pulled.
func (b *Buffer[T]) EqualSeq(seq iter.Seq[T]) bool {
	next, stop := iter.Pull(seq)
	defer stop()

	for i := 0; i < b.Len(); i++ {
		v, ok := next()
		if !ok || v != b.at(i) {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// Compare lexicographically compares two buffers, returning -1, 0, or 1.
// Ordering needs cmp.Ordered, which methods cannot require on top of the
// type's own constraint, so comparison lives in package-level functions.
func Compare[T cmp.Ordered](a, b *Buffer[T]) int {
	return CompareSeq(a, b.Values())
}

// CompareSlice lexicographically compares a buffer with a plain slice.
func CompareSlice[T cmp.Ordered](b *Buffer[T], s []T) int {
	n := min(b.Len(), len(s))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(b.at(i), s[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(b.Len(), len(s))
}

// CompareSeq lexicographically compares a buffer with any element
// sequence. The buffer is "less" when it runs out first or at the first
// smaller element. Unbounded sequences are safe: once every buffer
// element has matched, one extra pull decides the result.
func CompareSeq[T cmp.Ordered](b *Buffer[T], seq iter.Seq[T]) int {
	next, stop := iter.Pull(seq)
	defer stop()

	for i := 0; i < b.Len(); i++ {
		v, ok := next()
		if !ok {
			return 1
		}
		if c := cmp.Compare(b.at(i), v); c != 0 {
			return c
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}
