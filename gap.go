package gapbuffer

// moveGap relocates the gap so that gapStart equals the logical position
// p, 0 <= p <= Len(). Logical content and length are unchanged; the cost
// is proportional to the distance moved, which is what makes clustered
// edits cheap.
func (b *Buffer[T]) moveGap(p int) {
	if p == b.gapStart {
		return
	}

	gapLen := b.gapEnd - b.gapStart
	if gapLen == 0 {
		// Nothing to shift around; just reposition the empty gap.
		b.gapStart, b.gapEnd = p, p
		return
	}

	if p < b.gapStart {
		// Shift the elements at [p, gapStart) rightward by gapLen.
		n := b.gapStart - p
		copy(b.store[b.gapEnd-n:b.gapEnd], b.store[p:b.gapStart])
		b.gapStart = p
		b.gapEnd -= n
	} else {
		// Shift the elements at [gapEnd, gapEnd+(p-gapStart)) leftward.
		n := p - b.gapStart
		copy(b.store[b.gapStart:b.gapStart+n], b.store[b.gapEnd:b.gapEnd+n])
		b.gapStart = p
		b.gapEnd += n
	}
}

// growGap ensures the gap holds at least k free slots, reallocating the
// backing store geometrically when it does not. The pre-gap region keeps
// its physical position; the post-gap region moves to end exactly at the
// new capacity boundary. The store never shrinks.
func (b *Buffer[T]) growGap(k int) {
	if b.gapEnd-b.gapStart >= k {
		return
	}

	oldCap := len(b.store)
	newCap := oldCap * 2
	if need := oldCap + k + b.minGap; newCap < need {
		newCap = need
	}

	store := make([]T, newCap)
	copy(store, b.store[:b.gapStart])

	tail := oldCap - b.gapEnd
	copy(store[newCap-tail:], b.store[b.gapEnd:])

	b.store = store
	b.gapEnd = newCap - tail
}
