package textbuf

import (
	"errors"
	"strings"

	"github.com/dshills/gapbuffer"
)

// Errors returned by buffer operations.
var (
	// ErrNegativeCount indicates a delete was asked for a negative
	// number of runes.
	ErrNegativeCount = errors.New("delete count must not be negative")
)

// Buffer is a text buffer with a sticky cursor. It is not safe for
// concurrent use.
type Buffer struct {
	buf    *gapbuffer.Buffer[rune]
	cursor int
}

// New creates an empty buffer with the cursor at 0.
func New(opts ...gapbuffer.Option) *Buffer {
	return &Buffer{buf: gapbuffer.New[rune](opts...)}
}

// FromString creates a buffer holding s, with the cursor at 0.
func FromString(s string, opts ...gapbuffer.Option) *Buffer {
	return &Buffer{buf: gapbuffer.FromString(s, opts...)}
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Cursor returns the cursor position, always in [0, Len()].
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamping to [0, Len()]. The gap does not
// move until the next mutation.
func (b *Buffer) SetCursor(p int) {
	if p < 0 {
		p = 0
	} else if n := b.buf.Len(); p > n {
		p = n
	}
	b.cursor = p
}

// MoveCursor moves the cursor by delta, clamping at the buffer's ends.
func (b *Buffer) MoveCursor(delta int) {
	b.SetCursor(b.cursor + delta)
}

// Insert inserts text before the cursor and leaves the cursor after the
// inserted text.
func (b *Buffer) Insert(text string) {
	runes := []rune(text)
	// The cursor invariant keeps the position valid.
	_ = b.buf.Insert(b.cursor, runes...)
	b.cursor += len(runes)
}

// InsertAt moves the cursor to pos (clamped) and inserts text there.
func (b *Buffer) InsertAt(text string, pos int) {
	b.SetCursor(pos)
	b.Insert(text)
}

// Delete removes n runes forward from the cursor, clamped to the
// remaining content. Negative n is ErrNegativeCount.
func (b *Buffer) Delete(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	b.buf.Delete(b.cursor, b.cursor+n)
	return nil
}

// DeleteAt moves the cursor to pos (clamped) and deletes n runes there.
func (b *Buffer) DeleteAt(n, pos int) error {
	b.SetCursor(pos)
	return b.Delete(n)
}

// RuneAt returns the rune at index i. Negative indices count from the
// end.
func (b *Buffer) RuneAt(i int) (rune, error) {
	return b.buf.Get(i)
}

// Slice returns the text in [start, stop), with ordered-sequence slice
// clamping.
func (b *Buffer) Slice(start, stop int) string {
	return string(b.buf.Slice(start, stop).ToSlice())
}

// Contains reports whether the buffer's text contains sub as a
// contiguous run of runes. The empty string is not contained. The search
// runs over the raw contiguous view, so external pattern matchers see
// the text the same way.
func (b *Buffer) Contains(sub string) bool {
	if sub == "" {
		return false
	}
	found := false
	_ = b.buf.View(func(data []rune) error {
		found = strings.Contains(string(data), sub)
		return nil
	})
	return found
}

// String returns the buffer's entire text.
func (b *Buffer) String() string {
	return string(b.buf.ToSlice())
}
