package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mwhite7112/webreader/internal/db"
	"github.com/mwhite7112/webreader/internal/vocabulary"
)

// MemoryStore keeps vocabulary in process, the way the reader does.
type MemoryStore struct {
	bank *vocabulary.Bank
}

func NewMemoryStore(bank *vocabulary.Bank) *MemoryStore {
	return &MemoryStore{bank: bank}
}

func (m *MemoryStore) List(_ context.Context) ([]vocabulary.Entry, error) {
	return m.bank.List(), nil
}

func (m *MemoryStore) Add(_ context.Context, e vocabulary.Entry) (vocabulary.Entry, error) {
	return m.bank.Add(e), nil
}

func (m *MemoryStore) RemoveByWord(_ context.Context, word string) (int, error) {
	return m.bank.Remove(word), nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.bank.Clear()
	return nil
}

// PostgresStore keeps vocabulary in the vocabulary_entries table.
type PostgresStore struct {
	q db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{q: q}
}

func (p *PostgresStore) List(ctx context.Context) ([]vocabulary.Entry, error) {
	rows, err := p.q.ListVocabularyEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]vocabulary.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, entryFromRow(r))
	}
	return out, nil
}

func (p *PostgresStore) Add(ctx context.Context, e vocabulary.Entry) (vocabulary.Entry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.Synonyms == nil {
		e.Synonyms = []string{}
	}

	row, err := p.q.CreateVocabularyEntry(ctx, db.CreateVocabularyEntryParams{
		ID:          e.ID,
		Word:        e.Word,
		Definition:  e.Definition,
		Synonyms:    e.Synonyms,
		Translation: e.Translation,
		Mnemonic:    e.Mnemonic,
		SavedAt:     e.Timestamp,
	})
	if err != nil {
		return vocabulary.Entry{}, err
	}
	return entryFromRow(row), nil
}

func (p *PostgresStore) RemoveByWord(ctx context.Context, word string) (int, error) {
	n, err := p.q.DeleteVocabularyEntriesByWord(ctx, word)
	return int(n), err
}

func (p *PostgresStore) Clear(ctx context.Context) error {
	return p.q.DeleteAllVocabularyEntries(ctx)
}

func entryFromRow(r db.VocabularyEntry) vocabulary.Entry {
	synonyms := r.Synonyms
	if synonyms == nil {
		synonyms = []string{}
	}
	return vocabulary.Entry{
		ID:          r.ID,
		Word:        r.Word,
		Definition:  r.Definition,
		Synonyms:    synonyms,
		Translation: r.Translation,
		Mnemonic:    r.Mnemonic,
		Timestamp:   r.SavedAt,
	}
}
