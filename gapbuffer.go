package gapbuffer

import (
	"fmt"
	"iter"
	"slices"
)

// Buffer is a gap buffer over elements of type T. The zero value is not
// usable; create buffers with New, FromSlice, FromSeq, or FromString.
//
// The backing store is one contiguous slice containing the logical
// elements plus a gap of unused slots at [gapStart, gapEnd). The gap is
// invisible to every operation's caller: indices, slices, iteration, and
// comparison all address the logical sequence. Invariant:
// 0 <= gapStart <= gapEnd <= cap.
//
// Buffers are not safe for concurrent use.
type Buffer[T comparable] struct {
	store    []T
	gapStart int
	gapEnd   int
	minGap   int
}

// New creates an empty buffer. The initial store is all gap.
func New[T comparable](opts ...Option) *Buffer[T] {
	cfg := newConfig(opts)
	return &Buffer[T]{
		store:  make([]T, cfg.minGap),
		gapEnd: cfg.minGap,
		minGap: cfg.minGap,
	}
}

// FromSlice creates a buffer holding a copy of items, with the gap placed
// after them.
func FromSlice[T comparable](items []T, opts ...Option) *Buffer[T] {
	cfg := newConfig(opts)
	store := make([]T, len(items)+cfg.minGap)
	copy(store, items)
	return &Buffer[T]{
		store:    store,
		gapStart: len(items),
		gapEnd:   len(store),
		minGap:   cfg.minGap,
	}
}

// FromSeq creates a buffer from any element sequence.
func FromSeq[T comparable](seq iter.Seq[T], opts ...Option) *Buffer[T] {
	return FromSlice(slices.Collect(seq), opts...)
}

// FromString creates a rune buffer from the characters of s.
func FromString(s string, opts ...Option) *Buffer[rune] {
	return FromSlice([]rune(s), opts...)
}

// Len returns the number of logical elements.
func (b *Buffer[T]) Len() int {
	return len(b.store) - (b.gapEnd - b.gapStart)
}

// Cap returns the capacity of the backing store, gap included.
func (b *Buffer[T]) Cap() int {
	return len(b.store)
}

// IsEmpty returns true if the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.Len() == 0
}

// GapStart returns the physical offset of the first gap slot.
// Useful for diagnostics and locality instrumentation.
func (b *Buffer[T]) GapStart() int {
	return b.gapStart
}

// GapEnd returns the physical offset one past the last gap slot.
func (b *Buffer[T]) GapEnd() int {
	return b.gapEnd
}

// Get returns the element at logical index i. Negative indices count
// from the end.
func (b *Buffer[T]) Get(i int) (T, error) {
	i, err := b.normalizeIndex(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.store[b.phys(i)], nil
}

// Set overwrites the element at logical index i. The gap does not move.
func (b *Buffer[T]) Set(i int, v T) error {
	i, err := b.normalizeIndex(i)
	if err != nil {
		return err
	}
	b.store[b.phys(i)] = v
	return nil
}

// Insert inserts items before logical position i. i may equal Len(),
// which appends. Negative indices count from the end.
func (b *Buffer[T]) Insert(i int, items ...T) error {
	p, err := b.normalizeInsertIndex(i)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	b.moveGap(p)
	b.growGap(len(items))
	copy(b.store[b.gapStart:], items)
	b.gapStart += len(items)
	return nil
}

// Delete removes the logical range [start, stop). Bounds follow
// ordered-sequence slice conventions: negative values count from the
// end and out-of-range values are clamped. The deleted elements are
// absorbed into the gap without being copied.
func (b *Buffer[T]) Delete(start, stop int) {
	start, stop = b.clampRange(start, stop)
	if start >= stop {
		return
	}
	b.moveGap(start)
	b.gapEnd += stop - start
}

// Append adds v at the end of the buffer.
func (b *Buffer[T]) Append(v T) {
	// Len() is always a valid insert position.
	_ = b.Insert(b.Len(), v)
}

// Extend adds items at the end of the buffer.
func (b *Buffer[T]) Extend(items ...T) {
	_ = b.Insert(b.Len(), items...)
}

// ExtendSeq adds every element of seq at the end of the buffer.
func (b *Buffer[T]) ExtendSeq(seq iter.Seq[T]) {
	b.Extend(slices.Collect(seq)...)
}

// Pop removes and returns the last element.
func (b *Buffer[T]) Pop() (T, error) {
	return b.PopAt(b.Len() - 1)
}

// PopAt removes and returns the element at logical index i. Negative
// indices count from the end.
func (b *Buffer[T]) PopAt(i int) (T, error) {
	if b.IsEmpty() {
		var zero T
		return zero, ErrEmptyBuffer
	}
	i, err := b.normalizeIndex(i)
	if err != nil {
		var zero T
		return zero, err
	}
	v := b.store[b.phys(i)]
	b.moveGap(i)
	b.gapEnd++
	return v, nil
}

// Contains reports whether v is one of the buffer's elements.
func (b *Buffer[T]) Contains(v T) bool {
	_, err := b.IndexOf(v)
	return err == nil
}

// IndexOf returns the first logical index holding v, or ErrNotFound.
func (b *Buffer[T]) IndexOf(v T) (int, error) {
	// Scan the two physical runs in logical order and translate the hit
	// back to a logical index.
	for p := 0; p < b.gapStart; p++ {
		if b.store[p] == v {
			return b.logicalIndex(p), nil
		}
	}
	for p := b.gapEnd; p < len(b.store); p++ {
		if b.store[p] == v {
			return b.logicalIndex(p), nil
		}
	}
	return 0, ErrNotFound
}

// IndexOfRange returns the first logical index in [start, stop) holding
// v, or ErrNotFound. Bounds follow slice conventions (negative values
// count from the end, out-of-range values are clamped).
func (b *Buffer[T]) IndexOfRange(v T, start, stop int) (int, error) {
	start, stop = b.clampRange(start, stop)
	for i := start; i < stop; i++ {
		if b.store[b.phys(i)] == v {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Count returns the number of elements equal to v.
func (b *Buffer[T]) Count(v T) int {
	count := 0
	for e := range b.Values() {
		if e == v {
			count++
		}
	}
	return count
}

// Remove deletes the first occurrence of v, or returns ErrNotFound.
func (b *Buffer[T]) Remove(v T) error {
	i, err := b.IndexOf(v)
	if err != nil {
		return err
	}
	b.Delete(i, i+1)
	return nil
}

// Reverse reverses the buffer's elements in place.
func (b *Buffer[T]) Reverse() {
	for i, j := 0, b.Len()-1; i < j; i, j = i+1, j-1 {
		pi, pj := b.phys(i), b.phys(j)
		b.store[pi], b.store[pj] = b.store[pj], b.store[pi]
	}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return FromSlice(b.ToSlice(), WithMinGap(b.minGap))
}

// Concat returns a new buffer holding this buffer's elements followed by
// other's. Neither input is modified.
func (b *Buffer[T]) Concat(other *Buffer[T]) *Buffer[T] {
	out := b.Clone()
	out.Extend(other.ToSlice()...)
	return out
}

// Repeat returns a new buffer holding this buffer's elements repeated n
// times. n <= 0 yields an empty buffer.
func (b *Buffer[T]) Repeat(n int) *Buffer[T] {
	out := New[T](WithMinGap(b.minGap))
	items := b.ToSlice()
	for range max(n, 0) {
		out.Extend(items...)
	}
	return out
}

// ToSlice returns a copy of the logical elements as a plain slice.
func (b *Buffer[T]) ToSlice() []T {
	out := make([]T, 0, b.Len())
	out = append(out, b.store[:b.gapStart]...)
	out = append(out, b.store[b.gapEnd:]...)
	return out
}

// String returns a diagnostic representation of the logical elements.
func (b *Buffer[T]) String() string {
	return fmt.Sprint(b.ToSlice())
}
