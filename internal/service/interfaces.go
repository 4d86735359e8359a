package service

import (
	"context"

	"github.com/mwhite7112/webreader/internal/lookup"
	"github.com/mwhite7112/webreader/internal/vocabulary"
)

// Analyzer abstracts the model call for testing.
type Analyzer interface {
	Analyze(ctx context.Context, p lookup.Prompt) (lookup.Result, error)
}

// ResultCache abstracts the lookup result cache.
type ResultCache interface {
	Get(ctx context.Context, key string) (lookup.Result, bool, error)
	Set(ctx context.Context, key string, res lookup.Result) error
}

// VocabularyStore persists saved words.
type VocabularyStore interface {
	List(ctx context.Context) ([]vocabulary.Entry, error)
	Add(ctx context.Context, e vocabulary.Entry) (vocabulary.Entry, error)
	RemoveByWord(ctx context.Context, word string) (int, error)
	Clear(ctx context.Context) error
}

// EventPublisher abstracts vocabulary.updated publishing.
type EventPublisher interface {
	PublishVocabularyUpdated(ctx context.Context, action, word string, count int) error
}
