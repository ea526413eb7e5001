package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termpong/internal/config"
)

// KeyMap defines the host key bindings of the game screen. Paddle and
// serve keys come from the game configuration; the bindings here describe
// them for the help bar.
type KeyMap struct {
	LeftPaddle  key.Binding
	RightPaddle key.Binding
	Serve       key.Binding
	Start       key.Binding
	Pause       key.Binding
	Reset       key.Binding
	Expand      key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftPaddle, k.RightPaddle, k.Serve, k.Pause, k.Expand, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftPaddle, k.RightPaddle, k.Serve},
		{k.Start, k.Pause, k.Reset},
		{k.Expand, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// NewKeyMap returns the default host bindings plus help entries for the
// configured game keys.
func NewKeyMap(b config.KeyBindings) KeyMap {
	return KeyMap{
		LeftPaddle: key.NewBinding(
			key.WithKeys(append(append([]string{}, b.LeftUp...), b.LeftDown...)...),
			key.WithHelp(helpKeys(b.LeftUp, b.LeftDown), "left paddle"),
		),
		RightPaddle: key.NewBinding(
			key.WithKeys(append(append([]string{}, b.RightUp...), b.RightDown...)...),
			key.WithHelp(helpKeys(b.RightUp, b.RightDown), "right paddle"),
		),
		Serve: key.NewBinding(
			key.WithKeys(b.Serve...),
			key.WithHelp(helpKeys(b.Serve), "serve"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Expand: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "expand"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpKeys renders key lists like "w/s" for the help bar.
func helpKeys(groups ...[]string) string {
	var parts []string
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		parts = append(parts, displayKey(g[0]))
	}
	return strings.Join(parts, "/")
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return k
	}
}
