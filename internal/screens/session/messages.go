package session

import (
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/screens/practice"
)

// batchLoadedMsg carries the fetched SRS batch, or the fetch failure.
type batchLoadedMsg struct {
	items []api.CharacterDetail
	err   error
}

// itemDoneMsg arrives after the practice screen pops with a confirmed
// outcome for the current character.
type itemDoneMsg struct {
	outcome practice.Outcome
}

// sessionEndMsg requests session teardown: journal the end event and show
// the summary.
type sessionEndMsg struct{}
