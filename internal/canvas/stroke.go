package canvas

// CanvasSize is the side length of the square drawing area. All recorded
// coordinates are clamped into [0, CanvasSize] on both axes so user strokes
// and reference strokes share one coordinate space.
const CanvasSize = 109.0

// Point is a single recorded pointer sample in canvas-local coordinates.
// Immutable once recorded.
type Point struct {
	X float64
	Y float64
}

// Stroke is one continuous pen-down-to-pen-up gesture, recorded as an
// ordered list of points. Order is significant: it defines the drawing
// direction used by backend scoring.
type Stroke []Point

// ReferenceStroke is backend-provided canonical stroke data for a character,
// one ordered list of [x, y] pairs per expected stroke. Read-only ground
// truth for the session.
type ReferenceStroke [][2]float64

// Clamp returns p with both coordinates forced into the canvas bounds.
func Clamp(p Point) Point {
	return Point{
		X: clampCoord(p.X),
		Y: clampCoord(p.Y),
	}
}

func clampCoord(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > CanvasSize {
		return CanvasSize
	}
	return v
}

// Pairs converts a stroke to the [x, y] pair representation used on the wire.
func (s Stroke) Pairs() [][2]float64 {
	out := make([][2]float64, len(s))
	for i, p := range s {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// StrokeBuffer accumulates pointer samples into strokes and strokes into the
// current attempt. It is owned by exactly one screen instance and performs
// pure state mutation: no I/O, no error conditions.
type StrokeBuffer struct {
	current Stroke
	open    bool
	strokes []Stroke
}

// Begin starts a new stroke at p, discarding any stale in-progress path.
func (b *StrokeBuffer) Begin(p Point) {
	b.current = Stroke{Clamp(p)}
	b.open = true
}

// Extend appends a clamped point to the open stroke. No-op when no stroke
// is open; the gesture contract should prevent that, but a stray motion
// event after release must not corrupt the attempt.
func (b *StrokeBuffer) Extend(p Point) {
	if !b.open {
		return
	}
	b.current = append(b.current, Clamp(p))
}

// End seals the open stroke, appends it to the attempt and returns it.
// Returns nil when no stroke is open.
func (b *StrokeBuffer) End() Stroke {
	if !b.open {
		return nil
	}
	s := b.current
	b.current = nil
	b.open = false
	b.strokes = append(b.strokes, s)
	return s
}

// Open reports whether a stroke is currently being drawn.
func (b *StrokeBuffer) Open() bool {
	return b.open
}

// Current returns the in-progress stroke for live rendering.
func (b *StrokeBuffer) Current() Stroke {
	return b.current
}

// Strokes returns the sealed strokes of the current attempt.
func (b *StrokeBuffer) Strokes() []Stroke {
	return b.strokes
}

// Len returns the number of sealed strokes in the attempt.
func (b *StrokeBuffer) Len() int {
	return len(b.strokes)
}

// RemoveLast drops the most recent sealed stroke. No-op on an empty attempt.
func (b *StrokeBuffer) RemoveLast() {
	if len(b.strokes) == 0 {
		return
	}
	b.strokes = b.strokes[:len(b.strokes)-1]
}

// Clear discards the attempt and any in-progress stroke.
func (b *StrokeBuffer) Clear() {
	b.current = nil
	b.open = false
	b.strokes = nil
}
