package canvas

import (
	"strconv"
	"strings"
)

// Path serialization between strokes and SVG-style path descriptions.
//
// User strokes and backend reference strokes must serialize to byte-identical
// syntax so overlay comparison stays visually aligned; both funcs therefore
// share one formatter.

// StrokeToPath renders a stroke as a "M x y L x y ..." path description.
// Empty input yields an empty path (rendered as nothing).
func StrokeToPath(s Stroke) string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range s {
		writeCommand(&b, i, p.X, p.Y)
	}
	return b.String()
}

// ReferenceToPath renders a reference stroke with the same algorithm and the
// same output syntax as StrokeToPath.
func ReferenceToPath(ref ReferenceStroke) string {
	if len(ref) == 0 {
		return ""
	}
	var b strings.Builder
	for i, pair := range ref {
		writeCommand(&b, i, pair[0], pair[1])
	}
	return b.String()
}

func writeCommand(b *strings.Builder, i int, x, y float64) {
	if i == 0 {
		b.WriteString("M ")
	} else {
		b.WriteString(" L ")
	}
	b.WriteString(formatCoord(x))
	b.WriteByte(' ')
	b.WriteString(formatCoord(y))
}

// formatCoord renders a coordinate with minimal digits: integers without a
// decimal point, fractions with up to two places.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
