package gapbuffer

import "iter"

// Values returns an iterator over the logical elements in order: the
// physical run before the gap, then the run after it. Each range over
// the returned sequence is a fresh, independent traversal. Mutating the
// buffer during a traversal leaves the traversal's position undefined.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := 0; p < b.gapStart; p++ {
			if !yield(b.store[p]) {
				return
			}
		}
		for p := b.gapEnd; p < len(b.store); p++ {
			if !yield(b.store[p]) {
				return
			}
		}
	}
}

// All returns an iterator over logical index/element pairs in order.
// The same restart and mutation rules as Values apply.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for p := 0; p < b.gapStart; p++ {
			if !yield(i, b.store[p]) {
				return
			}
			i++
		}
		for p := b.gapEnd; p < len(b.store); p++ {
			if !yield(i, b.store[p]) {
				return
			}
			i++
		}
	}
}
