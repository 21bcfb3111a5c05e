// Package main is an interactive demo of the gap buffer: a one-line
// editor that renders the buffer's physical layout live, so the gap can
// be watched chasing the cursor while typing.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gapbuffer/textbuf"
)

func main() {
	os.Exit(run())
}

func run() int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	// Ensure terminal restoration on all exit paths.
	defer screen.Fini()

	buf := textbuf.FromString("hello, world!")

	for {
		draw(screen, buf)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !handleKey(ev, buf) {
				return 0
			}
		}
	}
}

// handleKey applies one key event to the buffer. Returns false to quit.
func handleKey(ev *tcell.EventKey, buf *textbuf.Buffer) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		buf.MoveCursor(-1)
	case tcell.KeyRight:
		buf.MoveCursor(1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		buf.SetCursor(0)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		buf.SetCursor(buf.Len())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if buf.Cursor() > 0 {
			buf.MoveCursor(-1)
			_ = buf.Delete(1)
		}
	case tcell.KeyDelete, tcell.KeyCtrlD:
		_ = buf.Delete(1)
	case tcell.KeyRune:
		buf.Insert(string(ev.Rune()))
	}
	return true
}

func draw(screen tcell.Screen, buf *textbuf.Buffer) {
	screen.Clear()

	drawText(screen, 0, 0, tcell.StyleDefault.Bold(true), buf.String())
	screen.ShowCursor(buf.Cursor(), 0)

	dim := tcell.StyleDefault.Dim(true)
	for i, line := range strings.Split(buf.DebugView(), "\n") {
		drawText(screen, 0, 2+i, dim, line)
	}

	_, h := screen.Size()
	drawText(screen, 0, h-1, dim,
		"type to insert | arrows/home/end move | backspace/delete | esc quits")

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
