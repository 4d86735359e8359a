package lookup

import (
	"errors"
	"strings"
)

// DefaultLanguage is used when a request does not name a target language.
const DefaultLanguage = "Portuguese"

// ErrMissingFields is returned when a request lacks a word or a sentence.
var ErrMissingFields = errors.New("word and sentence are required")

// Request is a single word lookup sent by the reader.
type Request struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"` // full paragraph around the word
	Language string `json:"language,omitempty"`
}

// Normalize trims all fields and fills in the default language.
func (r Request) Normalize() Request {
	r.Word = strings.TrimSpace(r.Word)
	r.Sentence = strings.TrimSpace(r.Sentence)
	r.Language = strings.TrimSpace(r.Language)
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	return r
}

func (r Request) Validate() error {
	if r.Word == "" || r.Sentence == "" {
		return ErrMissingFields
	}
	return nil
}

// Result is what the popover renders. Every field is a plain string; any
// shape the model returns is folded into this one at parse time.
type Result struct {
	Definition          string   `json:"definition"`
	Synonyms            []string `json:"synonyms"`
	ContextDefinition   string   `json:"context_definition"`
	WordTranslation     string   `json:"word_translation"`
	SentenceTranslation string   `json:"sentence_translation"`
}
