package practice

import (
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/canvas"
)

// strokeJudgedMsg carries the backend score for a sealed guided stroke.
// The machine applies it on the update loop via ResolveStroke.
type strokeJudgedMsg struct {
	res *canvas.AccuracyResult
	err error
}

// finalCheckedMsg carries the backend score for a whole-character check.
// The machine applies it on the update loop via ResolveFinal.
type finalCheckedMsg struct {
	res *canvas.AccuracyResult
	err error
}

// candidatesMsg carries a recognition outcome; stale ones are dropped.
type candidatesMsg struct {
	outcome canvas.Outcome
}
