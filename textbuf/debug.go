package textbuf

import (
	"fmt"
	"strings"
)

// DebugView renders the buffer's physical layout for diagnostics: the
// quoted text and its length, the raw store with gap slots drawn as '_',
// and marker rows locating the gap start (s), gap end (e), cursor (^),
// and store capacity ($). Markers sharing a column stack onto extra
// rows.
func (b *Buffer) DebugView() string {
	gapStart := b.buf.GapStart()
	gapEnd := b.buf.GapEnd()
	capacity := b.buf.Cap()
	runes := b.buf.ToSlice()

	// Physical layout: left of gap, gap slots, right of gap.
	phys := make([]rune, 0, capacity)
	phys = append(phys, runes[:gapStart]...)
	for i := gapStart; i < gapEnd; i++ {
		phys = append(phys, '_')
	}
	phys = append(phys, runes[gapStart:]...)

	markers := []struct {
		c   rune
		pos int
	}{
		{'s', gapStart},
		{'e', gapEnd},
		{'^', b.cursor},
		{'$', capacity},
	}

	maxPos := 0
	for _, m := range markers {
		if m.pos > maxPos {
			maxPos = m.pos
		}
	}

	// Place each marker in the first row whose column is still free.
	var rows [][]rune
	for _, m := range markers {
		placed := false
		for i := 0; i < len(rows) && !placed; i++ {
			if rows[i][m.pos] == ' ' {
				rows[i][m.pos] = m.c
				placed = true
			}
		}
		if !placed {
			row := make([]rune, maxPos+1)
			for i := range row {
				row[i] = ' '
			}
			row[m.pos] = m.c
			rows = append(rows, row)
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, fmt.Sprintf("%q, %d", b.String(), b.Len()))
	lines = append(lines, string(phys))
	for _, row := range rows {
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	return strings.Join(lines, "\n")
}
