package canvas

import "testing"

func TestStrokeToPath(t *testing.T) {
	tests := []struct {
		name   string
		stroke Stroke
		want   string
	}{
		{"empty", nil, ""},
		{"single point", Stroke{{10, 20}}, "M 10 20"},
		{"polyline", Stroke{{0, 0}, {5, 5}, {10, 0}}, "M 0 0 L 5 5 L 10 0"},
		{"fractional", Stroke{{1.5, 2.25}, {3.125, 4}}, "M 1.5 2.25 L 3.13 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StrokeToPath(tt.stroke)
			if got != tt.want {
				t.Errorf("StrokeToPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReferenceToPath_MatchesStrokeSyntax(t *testing.T) {
	// Overlay alignment depends on byte-identical output for the same
	// coordinates, whatever the input representation.
	stroke := Stroke{{12, 34.5}, {56.75, 78}, {0, CanvasSize}}
	ref := ReferenceStroke{{12, 34.5}, {56.75, 78}, {0, CanvasSize}}

	sp := StrokeToPath(stroke)
	rp := ReferenceToPath(ref)
	if sp != rp {
		t.Errorf("path syntax diverged:\nuser: %q\nref:  %q", sp, rp)
	}
}

func TestReferenceToPath_Empty(t *testing.T) {
	if got := ReferenceToPath(nil); got != "" {
		t.Errorf("ReferenceToPath(nil) = %q, want empty", got)
	}
}
