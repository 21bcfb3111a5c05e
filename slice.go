package gapbuffer

// Slice returns a new buffer holding the logical elements in
// [start, stop). Bounds follow ordered-sequence slice conventions:
// negative values count from the end, out-of-range values are clamped,
// and an inverted range yields an empty buffer. The receiver is not
// modified.
func (b *Buffer[T]) Slice(start, stop int) *Buffer[T] {
	start, stop = b.clampRange(start, stop)
	out := make([]T, 0, stop-start)
	for i := start; i < stop; i++ {
		out = append(out, b.store[b.phys(i)])
	}
	return FromSlice(out, WithMinGap(b.minGap))
}

// SliceStep is Slice with a step. A negative step walks backward, in
// which case start should be the higher position; bounds are clamped so
// that, for example, SliceStep(-1, -n-1, -1) on a length-n buffer yields
// the reversal. A step of zero is ErrInvalidStep.
func (b *Buffer[T]) SliceStep(start, stop, step int) (*Buffer[T], error) {
	if step == 0 {
		return nil, ErrInvalidStep
	}

	n := b.Len()
	start = adjustSliceIndex(start, n, step)
	stop = adjustSliceIndex(stop, n, step)

	var out []T
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, b.store[b.phys(i)])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, b.store[b.phys(i)])
		}
	}
	return FromSlice(out, WithMinGap(b.minGap)), nil
}

// adjustSliceIndex resolves one slice bound against length n for the
// given step direction. Negative values count from the end; values still
// out of range afterward clamp to the walkable extremes (-1 and n-1 for
// backward walks, 0 and n for forward walks).
func adjustSliceIndex(i, n, step int) int {
	if i < 0 {
		i += n
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return i
	}
	if i >= n {
		if step < 0 {
			return n - 1
		}
		return n
	}
	return i
}

// SetSlice replaces the logical range [start, stop) with items. The
// logical length grows or shrinks when len(items) differs from the range
// size. Bounds are clamped like Slice's. Equivalent to deleting the range
// and inserting items at start, but performed in a single gap pass.
func (b *Buffer[T]) SetSlice(start, stop int, items []T) {
	start, stop = b.clampRange(start, stop)
	b.moveGap(start)
	b.gapEnd += stop - start
	if len(items) > 0 {
		b.growGap(len(items))
		copy(b.store[b.gapStart:], items)
		b.gapStart += len(items)
	}
}
