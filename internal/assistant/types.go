package assistant

// KanjiCard is a structured explanation of one character, rendered on the
// detail screen next to the stroke diagram.
type KanjiCard struct {
	Character    string
	Meaning      string
	Mnemonic     string
	Onyomi       []string
	Kunyomi      []string
	ExampleWords []ExampleWord
}

// ExampleWord is one vocabulary item using the explained character.
type ExampleWord struct {
	Word    string
	Reading string
	Meaning string
}

// Turn is one message of the tutor chat transcript.
type Turn struct {
	FromUser bool
	Text     string
}
