package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mwhite7112/webreader/internal/events"
	"github.com/mwhite7112/webreader/internal/vocabulary"
)

var ErrEmptyWord = errors.New("word is required")

// VocabularyService handles the saved-word list.
type VocabularyService struct {
	store  VocabularyStore
	events EventPublisher
}

// NewVocabularyService builds the service. publisher may be nil.
func NewVocabularyService(store VocabularyStore, publisher EventPublisher) *VocabularyService {
	return &VocabularyService{store: store, events: publisher}
}

func (s *VocabularyService) List(ctx context.Context) ([]vocabulary.Entry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return []vocabulary.Entry{}, nil
	}
	return entries, nil
}

// Save appends e. Saving a word twice keeps both entries.
func (s *VocabularyService) Save(ctx context.Context, e vocabulary.Entry) (vocabulary.Entry, error) {
	e.Word = strings.TrimSpace(e.Word)
	if e.Word == "" {
		return vocabulary.Entry{}, ErrEmptyWord
	}
	if e.Synonyms == nil {
		e.Synonyms = []string{}
	}

	saved, err := s.store.Add(ctx, e)
	if err != nil {
		return vocabulary.Entry{}, err
	}
	s.publish(ctx, events.ActionAdded, saved.Word, 1)
	return saved, nil
}

// Remove deletes every entry for word and returns how many went.
func (s *VocabularyService) Remove(ctx context.Context, word string) (int, error) {
	n, err := s.store.RemoveByWord(ctx, word)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.publish(ctx, events.ActionRemoved, word, n)
	}
	return n, nil
}

func (s *VocabularyService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.publish(ctx, events.ActionCleared, "", 0)
	return nil
}

func (s *VocabularyService) publish(ctx context.Context, action, word string, count int) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishVocabularyUpdated(ctx, action, word, count); err != nil {
		slog.Warn("publish vocabulary.updated failed", "action", action, "word", word, "error", err)
	}
}
