package core

import "math"

// Glyphs used when rasterizing shapes onto cells.
const (
	BlockChar = '█'
	DotChar   = '●'
	DashChar  = '│'
)

// Canvas projects continuous field coordinates onto a Screen.
// One cell covers CellW x CellH field units; terminal cells are roughly
// twice as tall as they are wide, so the default projection is 10x20.
type Canvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCanvas creates a canvas drawing into screen with the given cell size.
func NewCanvas(screen *Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// CellSize returns the number of field units covered by one cell.
func (c *Canvas) CellSize() (w, h float64) {
	return c.cellW, c.cellH
}

// Cells returns how many cells a field of the given size occupies.
func (c *Canvas) Cells(fieldW, fieldH float64) (cols, rows int) {
	return int(math.Ceil(fieldW / c.cellW)), int(math.Ceil(fieldH / c.cellH))
}

// Clear blanks the whole screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect fills every cell touched by the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	x0, y0 := c.cell(x, y)
	x1 := int(math.Ceil((x+w)/c.cellW)) - 1
	y1 := int(math.Ceil((y+h)/c.cellH)) - 1
	c.screen.DrawRect(NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1)), BlockChar, color)
}

// FillCircle fills the cells whose centers fall inside the circle. A circle
// smaller than a cell is drawn as a single dot.
func (c *Canvas) FillCircle(cx, cy, r float64, color Color) {
	if 2*r < c.cellW || 2*r < c.cellH {
		col, row := c.cell(cx, cy)
		c.screen.SetColored(col, row, DotChar, color)
		return
	}

	col0, row0 := c.cell(cx-r, cy-r)
	col1, row1 := c.cell(cx+r, cy+r)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			px := (float64(col) + 0.5) * c.cellW
			py := (float64(row) + 0.5) * c.cellH
			if math.Hypot(px-cx, py-cy) <= r {
				c.screen.SetColored(col, row, BlockChar, color)
			}
		}
	}
}

// DashedVLine draws a vertical dashed line at x between y0 and y1. A row is
// drawn when the dash pattern covers the row's center.
func (c *Canvas) DashedVLine(x, y0, y1, dash, gap float64, color Color) {
	col, rowStart := c.cell(x, y0)
	_, rowEnd := c.cell(x, y1)
	period := dash + gap
	for row := rowStart; row <= rowEnd; row++ {
		center := (float64(row) + 0.5) * c.cellH
		if center < y0 || center > y1 {
			continue
		}
		if period > 0 && math.Mod(center-y0, period) >= dash {
			continue
		}
		c.screen.SetColored(col, row, DashChar, color)
	}
}

// cell converts a field coordinate to the cell containing it.
func (c *Canvas) cell(x, y float64) (col, row int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}
