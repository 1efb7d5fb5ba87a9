package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

// cell layers, higher wins
const (
	layerEmpty = iota
	layerGrid
	layerReference
	layerInk
)

// CanvasGrid rasterizes the square drawing surface into a terminal cell
// grid. Logical coordinates run 0..109 on both axes; cells are roughly
// twice as tall as wide, so the grid renders at 2:1 columns per row to
// stay visually square.
type CanvasGrid struct {
	Cols int
	Rows int
}

// NewCanvasGrid sizes a grid to fit the given terminal area, preserving
// the square aspect ratio.
func NewCanvasGrid(maxCols, maxRows int) CanvasGrid {
	cols := maxCols
	if cols > 2*maxRows {
		cols = 2 * maxRows
	}
	if cols < 10 {
		cols = 10
	}
	return CanvasGrid{Cols: cols, Rows: (cols + 1) / 2}
}

// CellToPoint maps a cell position inside the grid to logical canvas
// coordinates. The result is clamped to the canvas bounds.
func (g CanvasGrid) CellToPoint(col, row int) canvas.Point {
	p := canvas.Point{
		X: float64(col) / float64(g.Cols-1) * canvas.CanvasSize,
		Y: float64(row) / float64(g.Rows-1) * canvas.CanvasSize,
	}
	return canvas.Clamp(p)
}

func (g CanvasGrid) pointToCell(p canvas.Point) (int, int) {
	col := int(p.X / canvas.CanvasSize * float64(g.Cols-1))
	row := int(p.Y / canvas.CanvasSize * float64(g.Rows-1))
	if col < 0 {
		col = 0
	}
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return col, row
}

// View renders reference strokes under the user's ink. Only the first
// refUpTo reference strokes are drawn; pass len(refs) to show them all,
// 0 to hide the template entirely.
func (g CanvasGrid) View(user []canvas.Stroke, refs []canvas.ReferenceStroke, refUpTo int) string {
	cells := make([][]int, g.Rows)
	for r := range cells {
		cells[r] = make([]int, g.Cols)
	}

	// center guides
	midRow, midCol := g.Rows/2, g.Cols/2
	for c := 0; c < g.Cols; c++ {
		cells[midRow][c] = layerGrid
	}
	for r := 0; r < g.Rows; r++ {
		cells[r][midCol] = layerGrid
	}

	if refUpTo > len(refs) {
		refUpTo = len(refs)
	}
	for _, ref := range refs[:refUpTo] {
		for i := 1; i < len(ref); i++ {
			g.plotSegment(cells,
				canvas.Point{X: ref[i-1][0], Y: ref[i-1][1]},
				canvas.Point{X: ref[i][0], Y: ref[i][1]},
				layerReference)
		}
	}

	for _, s := range user {
		if len(s) == 1 {
			col, row := g.pointToCell(s[0])
			cells[row][col] = layerInk
			continue
		}
		for i := 1; i < len(s); i++ {
			g.plotSegment(cells, s[i-1], s[i], layerInk)
		}
	}

	return g.render(cells)
}

// plotSegment rasterizes one line segment with Bresenham's algorithm.
func (g CanvasGrid) plotSegment(cells [][]int, a, b canvas.Point, layer int) {
	x0, y0 := g.pointToCell(a)
	x1, y1 := g.pointToCell(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if cells[y0][x0] < layer {
			cells[y0][x0] = layer
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (g CanvasGrid) render(cells [][]int) string {
	ink := theme.InkStroke
	ref := theme.ReferenceStroke
	grid := theme.GridLine

	var b strings.Builder
	for r, row := range cells {
		for c, layer := range row {
			switch layer {
			case layerInk:
				b.WriteString(ink.Render("█"))
			case layerReference:
				b.WriteString(ref.Render("░"))
			case layerGrid:
				glyph := "─"
				if c == g.Cols/2 && r == g.Rows/2 {
					glyph = "┼"
				} else if c == g.Cols/2 {
					glyph = "│"
				}
				b.WriteString(grid.Render(glyph))
			default:
				b.WriteString(" ")
			}
		}
		if r < len(cells)-1 {
			b.WriteString("\n")
		}
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
	return frame.Render(b.String())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
