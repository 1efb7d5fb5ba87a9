package assistant

import (
	"fmt"
	"strings"
)

const chatSystemPrompt = `You are a friendly, patient Japanese language tutor inside a kanji study app. Answer questions about kanji, vocabulary, grammar and study technique. Keep answers short enough to read in a terminal: a few sentences, or a short list. Use Japanese script freely but always gloss it in English.`

const explainSystemPrompt = `You are a Japanese language tutor creating a study card for a single kanji character. Be accurate about readings; do not invent rare readings. Mnemonics should connect the character's visual shape to its meaning.`

// buildExplainUserMessage builds the user message for a kanji card request.
func buildExplainUserMessage(character, meaning string, level int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a study card for the kanji %s.", character)
	if meaning != "" {
		fmt.Fprintf(&b, " Its meaning in this course is %q.", meaning)
	}
	if level > 0 {
		fmt.Fprintf(&b, " The student encounters it at level %d of 60, so calibrate example words accordingly.", level)
	}
	return b.String()
}
