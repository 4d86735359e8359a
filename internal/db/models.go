package db

import (
	"time"

	"github.com/google/uuid"
)

type VocabularyEntry struct {
	ID          uuid.UUID `json:"id"`
	Word        string    `json:"word"`
	Definition  string    `json:"definition"`
	Synonyms    []string  `json:"synonyms"`
	Translation string    `json:"translation"`
	Mnemonic    string    `json:"mnemonic"`
	SavedAt     time.Time `json:"saved_at"`
}
