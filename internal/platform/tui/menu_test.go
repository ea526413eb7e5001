package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termpong/internal/config"
)

func menuKeys(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		nm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update returned %T, want MenuModel", next)
		}
		m = nm
	}
	return m
}

func TestMenuSelect(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name        string
		withReplays bool
		keys        []tea.KeyMsg
		want        MenuChoice
	}{
		{"play", false, []tea.KeyMsg{enter}, ChoicePlay},
		{"expanded", false, []tea.KeyMsg{down, enter}, ChoicePlayExpanded},
		{"replays", true, []tea.KeyMsg{down, down, enter}, ChoiceReplays},
		{"quit entry", false, []tea.KeyMsg{down, down, enter}, ChoiceQuit},
		{"cursor stops at top", false, []tea.KeyMsg{up, up, enter}, ChoicePlay},
		{"cursor stops at bottom", false, []tea.KeyMsg{down, down, down, down, enter}, ChoiceQuit},
		{"quit key", true, []tea.KeyMsg{runes("q")}, ChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := menuKeys(t, NewMenuModel(config.DifficultyNormal, tt.withReplays), tt.keys...)
			if got := m.Choice(); got != tt.want {
				t.Errorf("Choice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuDifficulty(t *testing.T) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	tests := []struct {
		name  string
		start config.DifficultyPreset
		keys  []tea.KeyMsg
		want  config.DifficultyPreset
	}{
		{"initial", config.DifficultyHard, nil, config.DifficultyHard},
		{"next", config.DifficultyNormal, []tea.KeyMsg{right}, config.DifficultyHard},
		{"wraps forward", config.DifficultyHard, []tea.KeyMsg{right}, config.DifficultyEasy},
		{"wraps back", config.DifficultyEasy, []tea.KeyMsg{left}, config.DifficultyHard},
		{"unknown starts normal", config.DifficultyPreset("insane"), nil, config.DifficultyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := menuKeys(t, NewMenuModel(tt.start, false), tt.keys...)
			if got := m.Difficulty(); got != tt.want {
				t.Errorf("Difficulty() = %v, want %v", got, tt.want)
			}
			if m.Choice() != ChoiceNone {
				t.Errorf("difficulty change ended the menu with %v", m.Choice())
			}
		})
	}
}
