package db

import (
	"context"
)

type Querier interface {
	CreateVocabularyEntry(ctx context.Context, arg CreateVocabularyEntryParams) (VocabularyEntry, error)
	DeleteAllVocabularyEntries(ctx context.Context) error
	DeleteVocabularyEntriesByWord(ctx context.Context, word string) (int64, error)
	ListVocabularyEntries(ctx context.Context) ([]VocabularyEntry, error)
}

var _ Querier = (*Queries)(nil)
