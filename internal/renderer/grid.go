package renderer

import "strings"

// Grid is a rectangle of cells the renderer paints into.
type Grid interface {
	// SetContent places r at (x, y). Wide runes also cover (x+1, y).
	SetContent(x, y int, r rune, style Style)
	Size() (width, height int)
}

// MemoryGrid is an in-memory Grid.
type MemoryGrid struct {
	width, height int
	cells         [][]Cell
}

// NewMemoryGrid creates a grid filled with empty cells.
func NewMemoryGrid(width, height int) *MemoryGrid {
	g := &MemoryGrid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
		for x := range g.cells[y] {
			g.cells[y][x] = EmptyCell()
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *MemoryGrid) Size() (int, int) {
	return g.width, g.height
}

// SetContent sets a cell. Out of range positions are ignored.
func (g *MemoryGrid) SetContent(x, y int, r rune, style Style) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	c := NewStyledCell(r, style)
	g.cells[y][x] = c
	if c.Width == 2 && x+1 < g.width {
		g.cells[y][x+1] = Cell{Style: style}
	}
}

// Cell returns the cell at (x, y).
func (g *MemoryGrid) Cell(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return EmptyCell()
	}
	return g.cells[y][x]
}

// Row returns the text of row y, skipping continuation cells.
func (g *MemoryGrid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[y] {
		if !c.IsContinuation() {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
