// Package vocabulary keeps the words a reader chose to save.
package vocabulary

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwhite7112/webreader/internal/lookup"
)

// Entry is one saved word.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	Word        string    `json:"word"`
	Definition  string    `json:"definition"`
	Synonyms    []string  `json:"synonyms"`
	Translation string    `json:"translation"`
	Mnemonic    string    `json:"mnemonic"`
	Timestamp   time.Time `json:"timestamp"`
}

// TopSynonyms returns at most the first three synonyms.
func (e Entry) TopSynonyms() []string {
	if len(e.Synonyms) <= 3 {
		return e.Synonyms
	}
	return e.Synonyms[:3]
}

// EntryFromResult builds an entry for word from a lookup result.
func EntryFromResult(word string, res lookup.Result, now time.Time) Entry {
	synonyms := make([]string, len(res.Synonyms))
	copy(synonyms, res.Synonyms)
	return Entry{
		ID:          uuid.New(),
		Word:        word,
		Definition:  res.Definition,
		Synonyms:    synonyms,
		Translation: res.WordTranslation,
		Timestamp:   now,
	}
}

// CountLabel renders the bank header, e.g. "1 word saved".
func CountLabel(n int) string {
	if n == 1 {
		return "1 word saved"
	}
	return fmt.Sprintf("%d words saved", n)
}

// Bank is an in-memory, ordered list of entries. It is safe for concurrent
// use. Adding a word that is already present appends a second entry.
type Bank struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewBank() *Bank {
	return &Bank{}
}

// Add appends e, assigning an ID and timestamp when missing.
func (b *Bank) Add(e Entry) Entry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.Synonyms == nil {
		e.Synonyms = []string{}
	}

	b.mu.Lock()
	b.entries = append(b.entries, e)
	b.mu.Unlock()
	return e
}

// Remove deletes every entry whose word equals word exactly and returns how
// many were removed.
func (b *Bank) Remove(word string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.entries[:0]
	for _, e := range b.entries {
		if e.Word != word {
			kept = append(kept, e)
		}
	}
	removed := len(b.entries) - len(kept)
	clear(b.entries[len(kept):])
	b.entries = kept
	return removed
}

func (b *Bank) Clear() {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()
}

// List returns a copy of the entries, oldest first.
func (b *Bank) List() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Bank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
