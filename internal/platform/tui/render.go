package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termpong/internal/core"
	"github.com/vovakirdan/termpong/internal/pong"
)

// Rows and columns taken by everything but the field: HUD, field border
// and help bar.
const (
	chromeRows = 4
	chromeCols = 2
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2937")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

var (
	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22c55e"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawField renders the game onto the canvas, sizing the screen to the
// current field first.
func drawField(g *pong.Game, c *core.Canvas) {
	f := g.Field()
	cols, rows := c.Cells(f.W, f.H)
	c.Screen().Resize(cols, rows)
	g.Render(c)
}

// drawBanner writes text across the upper quarter of the field.
func drawBanner(c *core.Canvas, text string) {
	s := c.Screen()
	s.DrawTextCentered(s.Height()/4, text, core.ColorYellow)
}

// renderHUD renders the score line. status is shown on the right.
func renderHUD(score pong.Scoreboard, status string, width int) string {
	left := scoreStyle.Render(fmt.Sprintf("%d", score.Left))
	right := scoreStyle.Render(fmt.Sprintf("%d", score.Right))
	scores := lipgloss.JoinHorizontal(lipgloss.Top, left, statusStyle.Render("  :  "), right)

	line := scores
	if status != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, scores, "   ", statusStyle.Render(status))
	}
	if width <= 0 {
		return line
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// status describes the run state for the HUD.
func status(g *pong.Game) string {
	switch {
	case g.ServeTimer().Pending():
		return "serving..."
	case !g.Running():
		return "paused · space to serve"
	default:
		return ""
	}
}

// availableField converts the terminal size to available field units.
func availableField(cols, rows int, c *core.Canvas) pong.Size {
	cw, ch := c.CellSize()
	return pong.Size{
		W: float64(max(cols-chromeCols, 0)) * cw,
		H: float64(max(rows-chromeRows, 0)) * ch,
	}
}

// composeFrame joins HUD, bordered field and help bar.
func composeFrame(hud, field, help string, width int) string {
	body := fieldStyle.Render(field)
	if width > 0 {
		body = lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, hud, body, helpBarStyle.Render(help))
}
