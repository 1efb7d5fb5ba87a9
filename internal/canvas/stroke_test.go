package canvas

import "testing"

func TestClamp_BoundsEveryAxis(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{50, 60}, Point{50, 60}},
		{"negative x", Point{-3, 10}, Point{0, 10}},
		{"negative y", Point{10, -0.5}, Point{10, 0}},
		{"over x", Point{CanvasSize + 40, 10}, Point{CanvasSize, 10}},
		{"over y", Point{10, 1e9}, Point{10, CanvasSize}},
		{"both corners", Point{-1, CanvasSize + 1}, Point{0, CanvasSize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.in)
			if got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrokeBuffer_CaptureCycle(t *testing.T) {
	var b StrokeBuffer

	b.Begin(Point{10, 10})
	if !b.Open() {
		t.Fatal("expected stroke to be open after Begin")
	}
	b.Extend(Point{20, 30})
	b.Extend(Point{200, -5}) // clamped

	s := b.End()
	if len(s) != 3 {
		t.Fatalf("sealed stroke has %d points, want 3", len(s))
	}
	if s[2] != (Point{CanvasSize, 0}) {
		t.Errorf("point not clamped: %v", s[2])
	}
	if b.Len() != 1 {
		t.Errorf("attempt has %d strokes, want 1", b.Len())
	}
	if b.Open() {
		t.Error("expected stroke closed after End")
	}
}

func TestStrokeBuffer_ExtendWithoutBegin(t *testing.T) {
	var b StrokeBuffer
	b.Extend(Point{5, 5})
	if b.Open() || len(b.Current()) != 0 {
		t.Error("Extend without Begin must be a no-op")
	}
	if b.End() != nil {
		t.Error("End without Begin must return nil")
	}
	if b.Len() != 0 {
		t.Errorf("attempt has %d strokes, want 0", b.Len())
	}
}

func TestStrokeBuffer_BeginDiscardsStalePath(t *testing.T) {
	var b StrokeBuffer
	b.Begin(Point{1, 1})
	b.Extend(Point{2, 2})
	b.Begin(Point{9, 9})

	s := b.End()
	if len(s) != 1 || s[0] != (Point{9, 9}) {
		t.Errorf("stale path leaked into new stroke: %v", s)
	}
}

func TestStrokeBuffer_RemoveLastAndClear(t *testing.T) {
	var b StrokeBuffer
	for i := 0; i < 3; i++ {
		b.Begin(Point{float64(i), 0})
		b.End()
	}

	b.RemoveLast()
	if b.Len() != 2 {
		t.Errorf("after RemoveLast, len = %d, want 2", b.Len())
	}

	b.Clear()
	if b.Len() != 0 || b.Open() {
		t.Error("Clear must empty the attempt and close the stroke")
	}

	b.RemoveLast() // no-op on empty
	if b.Len() != 0 {
		t.Error("RemoveLast on empty attempt must be a no-op")
	}
}

func TestStroke_Pairs(t *testing.T) {
	s := Stroke{{1, 2}, {3.5, 4}}
	pairs := s.Pairs()
	if len(pairs) != 2 {
		t.Fatalf("len = %d, want 2", len(pairs))
	}
	if pairs[1] != [2]float64{3.5, 4} {
		t.Errorf("pairs[1] = %v", pairs[1])
	}
}
