package gapbuffer

// phys maps a logical index in [0, Len()) to its physical offset in the
// backing store. Elements before the gap sit at their logical position;
// elements at or after gapStart are displaced right by the gap length.
func (b *Buffer[T]) phys(i int) int {
	if i < b.gapStart {
		return i
	}
	return i + (b.gapEnd - b.gapStart)
}

// logicalIndex maps a physical offset outside [gapStart, gapEnd) back to
// its logical index.
func (b *Buffer[T]) logicalIndex(p int) int {
	if p >= b.gapEnd {
		return p - (b.gapEnd - b.gapStart)
	}
	return p
}

// normalizeIndex resolves a possibly-negative index against the current
// length. The valid range after normalization is [0, Len()).
func (b *Buffer[T]) normalizeIndex(i int) (int, error) {
	n := b.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrIndexOutOfRange
	}
	return i, nil
}

// normalizeInsertIndex is normalizeIndex with the one-past-the-end
// position allowed, for insertion at the append point.
func (b *Buffer[T]) normalizeInsertIndex(i int) (int, error) {
	n := b.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i > n {
		return 0, ErrIndexOutOfRange
	}
	return i, nil
}

// clampRange resolves a possibly-negative [start, stop) pair against the
// current length using ordered-sequence slice conventions: negative
// bounds count from the end, and the result is clamped to [0, Len()]
// with stop >= start.
func (b *Buffer[T]) clampRange(start, stop int) (int, int) {
	n := b.Len()
	if start < 0 {
		start += n
	}
	if start < 0 {
		start = 0
	} else if start > n {
		start = n
	}
	if stop < 0 {
		stop += n
	}
	if stop < 0 {
		stop = 0
	} else if stop > n {
		stop = n
	}
	if stop < start {
		stop = start
	}
	return start, stop
}
