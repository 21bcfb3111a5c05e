package gapbuffer

// View exposes the logical content as one contiguous, gap-free slice of
// the backing store for the duration of fn. The gap is first moved to
// the end, so data is exactly the logical sequence with no copy made;
// writes through data mutate the buffer in place. The view is released
// when fn returns on any path, including panics, because the slice must
// not escape fn: any later mutation may move the gap and silently break
// the contiguity the slice relied on.
//
// Calling the buffer's own mutating methods inside fn is undefined
// behavior for the same reason.
//
// The error returned by fn is passed through unchanged. The store stays
// compacted on return; no release work is needed, and the next mutation
// is free to re-gap it.
func (b *Buffer[T]) View(fn func(data []T) error) error {
	b.moveGap(b.Len())
	return fn(b.store[:b.gapStart])
}
