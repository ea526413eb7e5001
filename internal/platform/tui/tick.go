// Package tui provides the Bubble Tea frontend: the terminal game loop,
// key-release synthesis, rendering, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is an animation frame carrying its timestamp.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after the frame
// interval for fps.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
