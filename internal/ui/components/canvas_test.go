package components

import (
	"strings"
	"testing"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
)

func TestNewCanvasGridPreservesAspect(t *testing.T) {
	tests := []struct {
		maxCols, maxRows int
		wantCols         int
	}{
		{80, 20, 40}, // height-bound
		{30, 40, 30}, // width-bound
		{4, 4, 10},   // floor
	}
	for _, tt := range tests {
		g := NewCanvasGrid(tt.maxCols, tt.maxRows)
		if g.Cols != tt.wantCols {
			t.Errorf("NewCanvasGrid(%d, %d).Cols = %d, want %d",
				tt.maxCols, tt.maxRows, g.Cols, tt.wantCols)
		}
		if g.Rows != (g.Cols+1)/2 {
			t.Errorf("Rows = %d, want %d", g.Rows, (g.Cols+1)/2)
		}
	}
}

func TestCellToPointBounds(t *testing.T) {
	g := NewCanvasGrid(40, 20)

	origin := g.CellToPoint(0, 0)
	if origin.X != 0 || origin.Y != 0 {
		t.Errorf("origin = %+v, want (0, 0)", origin)
	}

	far := g.CellToPoint(g.Cols-1, g.Rows-1)
	if far.X != canvas.CanvasSize || far.Y != canvas.CanvasSize {
		t.Errorf("far corner = %+v, want (%v, %v)", far, canvas.CanvasSize, canvas.CanvasSize)
	}

	// Out-of-grid cells clamp into the canvas.
	over := g.CellToPoint(g.Cols+10, g.Rows+10)
	if over.X > canvas.CanvasSize || over.Y > canvas.CanvasSize {
		t.Errorf("over = %+v, not clamped", over)
	}
}

func TestViewRendersStrokes(t *testing.T) {
	g := NewCanvasGrid(40, 20)

	user := []canvas.Stroke{
		{{X: 10, Y: 10}, {X: 100, Y: 100}},
	}
	refs := []canvas.ReferenceStroke{
		{{10, 100}, {100, 10}},
	}

	out := g.View(user, refs, len(refs))
	if !strings.Contains(out, "█") {
		t.Error("expected ink cells in output")
	}
	if !strings.Contains(out, "░") {
		t.Error("expected reference cells in output")
	}

	hidden := g.View(user, refs, 0)
	if strings.Contains(hidden, "░") {
		t.Error("reference rendered despite refUpTo = 0")
	}

	lines := strings.Split(out, "\n")
	if len(lines) != g.Rows+2 {
		t.Errorf("rendered %d lines, want %d (rows + border)", len(lines), g.Rows+2)
	}
}
