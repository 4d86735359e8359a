package reader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mwhite7112/webreader/internal/lookup"
	"github.com/mwhite7112/webreader/internal/vocabulary"
)

// FailureMessage is shown for every failed lookup.
const FailureMessage = "Connection lost or timeout."

var (
	ErrBusy                = errors.New("a lookup is already in progress")
	ErrEmptyWord           = errors.New("nothing to look up")
	ErrNotReading          = errors.New("document is not in reading mode")
	ErrNoToken             = errors.New("no token at position")
	ErrNothingToSave       = errors.New("no result to save")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Languages lists the supported target languages in display order.
var Languages = []string{
	"Portuguese", "Spanish", "French", "German", "Italian",
	"Chinese", "Japanese", "Russian", "Arabic", "Hindi",
}

// Lookuper resolves a word in context. The relay client implements it.
type Lookuper interface {
	Lookup(ctx context.Context, req lookup.Request) (lookup.Result, error)
}

// Utterance configures one spoken phrase.
type Utterance struct {
	Lang string
	Rate float64
}

// DefaultUtterance is used for pronouncing looked-up words.
var DefaultUtterance = Utterance{Lang: "en-US", Rate: 0.85}

// Speaker pronounces text.
type Speaker interface {
	Speak(ctx context.Context, text string, u Utterance) error
}

// Session is one reader: a document, its popover and the saved words.
type Session struct {
	lookups Lookuper
	speaker Speaker
	bank    *vocabulary.Bank
	view    *View
	now     func() time.Time

	mu       sync.Mutex
	doc      Document
	language string
	cancel   context.CancelFunc
}

// NewSession builds a session. speaker may be nil.
func NewSession(lookups Lookuper, speaker Speaker, bank *vocabulary.Bank) *Session {
	if bank == nil {
		bank = vocabulary.NewBank()
	}
	return &Session{
		lookups:  lookups,
		speaker:  speaker,
		bank:     bank,
		view:     NewView(),
		now:      time.Now,
		language: lookup.DefaultLanguage,
	}
}

// SetText replaces the input and confirms it.
func (s *Session) SetText(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.SetInput(text)
	return s.doc.Confirm()
}

// Clear empties the document and closes the popover.
func (s *Session) Clear() {
	s.mu.Lock()
	s.doc.Clear()
	s.mu.Unlock()

	s.Close()
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Mode()
}

func (s *Session) Paragraphs() []Paragraph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Paragraphs()
}

func (s *Session) FindToken(word string) (paragraph, index int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.FindToken(word)
}

func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.language
}

// SetLanguage picks the target language. Only names in Languages are
// accepted.
func (s *Session) SetLanguage(name string) error {
	if !slices.Contains(Languages, name) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	s.mu.Lock()
	s.language = name
	s.mu.Unlock()
	return nil
}

// Popover returns the current popover.
func (s *Session) Popover() Popover {
	return s.view.Snapshot()
}

// ClickWord looks up the token at index in paragraph. The popover shows
// loading until the relay answers. The call blocks for the round trip and
// can be cut short by Close.
func (s *Session) ClickWord(ctx context.Context, paragraph, index int, anchor Point) (lookup.Result, error) {
	s.mu.Lock()
	if s.doc.Mode() != Reading {
		s.mu.Unlock()
		return lookup.Result{}, ErrNotReading
	}
	paras := s.doc.Paragraphs()
	if paragraph < 0 || paragraph >= len(paras) || index < 0 || index >= len(paras[paragraph].Tokens) {
		s.mu.Unlock()
		return lookup.Result{}, fmt.Errorf("%w: %d/%d", ErrNoToken, paragraph, index)
	}

	word := CleanWord(paras[paragraph].Tokens[index])
	sentence := strings.TrimSpace(paras[paragraph].Text)
	if word == "" || sentence == "" {
		s.mu.Unlock()
		return lookup.Result{}, ErrEmptyWord
	}

	seq, err := s.view.Open(word, sentence, anchor)
	if err != nil {
		s.mu.Unlock()
		return lookup.Result{}, err
	}

	lctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	req := lookup.Request{Word: word, Sentence: sentence, Language: s.language}
	s.mu.Unlock()

	defer cancel()

	res, err := s.lookups.Lookup(lctx, req)
	if err != nil {
		slog.Warn("word lookup failed", "word", word, "error", err)
		s.view.Fail(seq, FailureMessage)
		return lookup.Result{}, err
	}
	if !s.view.Resolve(seq, res) {
		return lookup.Result{}, context.Canceled
	}
	return res, nil
}

// Close cancels any in-flight lookup and hides the popover.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.view.Close()
}

// Speak pronounces the word in the popover. Without a speaker it logs and
// does nothing.
func (s *Session) Speak(ctx context.Context) error {
	word := s.view.Snapshot().Word
	if word == "" {
		return ErrEmptyWord
	}
	if s.speaker == nil {
		slog.Info("text-to-speech unavailable", "word", word)
		return nil
	}
	return s.speaker.Speak(ctx, word, DefaultUtterance)
}

// SaveCurrent stores the shown result in the vocabulary bank.
func (s *Session) SaveCurrent() (vocabulary.Entry, error) {
	p := s.view.Snapshot()
	if p.State != StateResult {
		return vocabulary.Entry{}, ErrNothingToSave
	}
	return s.bank.Add(vocabulary.EntryFromResult(p.Word, p.Result, s.now())), nil
}

// Vocabulary returns the saved words.
func (s *Session) Vocabulary() []vocabulary.Entry {
	return s.bank.List()
}
