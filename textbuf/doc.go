// Package textbuf provides a cursor-oriented text buffer for editor
// front-ends, layered on a rune gap buffer.
//
// The buffer keeps a sticky cursor: insertions and deletions happen at
// the cursor, and the underlying gap chases the cursor lazily. Moving
// the cursor alone costs nothing; the gap is only relocated when the
// next mutation needs it. This keeps bursts of typing at one spot cheap
// even after long-distance cursor jumps.
//
//	b := textbuf.FromString("hello!")
//	b.SetCursor(5)
//	b.Insert(", world") // "hello, world!"
//	b.Delete(1)         // removes the '!'
//
// Line/column addressing, encodings, and undo are out of scope; this is
// the storage layer an editor builds those on.
package textbuf
