// Package window provides the desktop frontend: a resizable raylib window
// with a raygui toolbar. Build it with -tags raylib.
package window

import "github.com/vovakirdan/termpong/internal/pong"

// ToolbarHeight is the pixel height of the button bar above the field.
const ToolbarHeight = 44

// Available returns the area left for the field in a window of size win.
func Available(win pong.Size) pong.Size {
	return pong.Size{W: win.W, H: max(win.H-ToolbarHeight, 0)}
}

// Origin returns the top-left pixel of a field centered below the toolbar.
// Fields larger than the window are pinned to the top-left corner.
func Origin(win, field pong.Size) (x, y float64) {
	avail := Available(win)
	x = max((avail.W-field.W)/2, 0)
	y = ToolbarHeight + max((avail.H-field.H)/2, 0)
	return x, y
}

// FullscreenEvent is the viewport change that follows a fullscreen toggle:
// entering fits the field to the screen, leaving restores the base size.
func FullscreenEvent(fullscreen bool, win pong.Size) pong.Event {
	if fullscreen {
		return pong.ExpandEvent{Avail: Available(win)}
	}
	return pong.RestoreEvent{}
}
