package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termpong/internal/config"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoicePlayExpanded
	ChoiceReplays
	ChoiceQuit
)

// menuItem is a selectable line of the title menu.
type menuItem struct {
	title  string
	choice MenuChoice
}

// MenuKeyMap defines key bindings for the title menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Difficulty key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns default key bindings for the title menu.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab"),
			key.WithHelp("←/→", "difficulty"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22c55e")).
			Padding(0, 2)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#e2e8f0"))
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items      []menuItem
	cursor     int
	difficulty int // Index into difficulties
	width      int
	height     int
	keys       MenuKeyMap
	choice     MenuChoice
}

// NewMenuModel creates a title menu. withReplays adds the replay browser
// entry; it needs a store.
func NewMenuModel(preset config.DifficultyPreset, withReplays bool) MenuModel {
	items := []menuItem{
		{title: "Play", choice: ChoicePlay},
		{title: "Play expanded", choice: ChoicePlayExpanded},
	}
	if withReplays {
		items = append(items, menuItem{title: "Replays", choice: ChoiceReplays})
	}
	items = append(items, menuItem{title: "Quit", choice: ChoiceQuit})

	m := MenuModel{
		items:      items,
		difficulty: 1,
		width:      80,
		height:     24,
		keys:       DefaultMenuKeyMap(),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = ChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Difficulty):
		step := 1
		if s := msg.String(); s == "left" || s == "h" {
			step = len(difficulties) - 1
		}
		m.difficulty = (m.difficulty + step) % len(difficulties)

	case key.Matches(msg, m.keys.Select):
		m.choice = m.items[m.cursor].choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("P  O  N  G"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.title
		style := menuItemStyle
		if i == m.cursor {
			line = "> " + item.title
			style = menuSelectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuItemStyle.Render(fmt.Sprintf("Difficulty: < %s >", m.Difficulty())))
	b.WriteString("\n\n")
	b.WriteString(helpBarStyle.Render("↑/↓ navigate · enter select · ←/→ difficulty · q quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Choice returns what the player picked, or ChoiceNone while the menu runs.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
}

// RunMenu runs the title menu and returns the selection.
func RunMenu(preset config.DifficultyPreset, withReplays bool) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(preset, withReplays),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Difficulty: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Difficulty: preset}, nil
	}
	return MenuResult{Choice: m.Choice(), Difficulty: m.Difficulty()}, nil
}
