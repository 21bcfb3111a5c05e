// Package gapbuffer provides a generic gap buffer, a sequence container
// backed by a single contiguous block of same-typed elements.
//
// A gap buffer keeps one contiguous run of unused slots (the gap) inside
// its backing store. Insertions and deletions happen at the gap, so edits
// clustered near the same position only pay for moving the gap a short
// distance rather than shifting the whole tail of the sequence. This is
// the classic storage scheme for text-editor cursors.
//
// Key properties:
//   - O(1) indexed get/set
//   - Amortized O(1) append; local insert/delete costs are proportional
//     to the gap-move distance, not to the buffer length
//   - Full ordered-sequence protocol: slicing, membership, iteration,
//     equality and lexicographic comparison against any element sequence
//   - Scoped contiguous raw view for interop with code that needs the
//     content as one unbroken slice
//
// Basic usage:
//
//	b := gapbuffer.FromString("hello, world!")
//	b.Insert(5, []rune(" there")...) // "hello there, world!"
//	b.Delete(11, -1)                 // "hello there!"
//	v, _ := b.Pop()                  // '!', buffer is "hello there"
//
// Buffers are not safe for concurrent use; callers needing that must add
// external synchronization.
package gapbuffer
