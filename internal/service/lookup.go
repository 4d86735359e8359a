package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mwhite7112/webreader/internal/cache"
	"github.com/mwhite7112/webreader/internal/lookup"
)

// ErrUpstream wraps every failure of the model call. Callers report it as
// one generic server error.
var ErrUpstream = errors.New("upstream lookup failed")

// LookupService answers word lookups: sentence extraction → cache → model.
type LookupService struct {
	analyzer Analyzer
	cache    ResultCache
}

// NewLookupService builds the service. resultCache may be nil.
func NewLookupService(analyzer Analyzer, resultCache ResultCache) *LookupService {
	return &LookupService{analyzer: analyzer, cache: resultCache}
}

// Analyze validates req, narrows the context to the sentence holding the
// word and asks the model for definitions and translations. The model is
// called at most once per call.
func (s *LookupService) Analyze(ctx context.Context, req lookup.Request) (lookup.Result, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return lookup.Result{}, err
	}

	target := lookup.ExtractSentence(req.Word, req.Sentence)
	key := cache.Key(req.Word, target, req.Language)

	slog.Info("analyzing word", "word", req.Word, "language", req.Language)

	if s.cache != nil {
		res, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("lookup cache read failed", "word", req.Word, "error", err)
		} else if ok {
			slog.Debug("lookup cache hit", "word", req.Word)
			return res, nil
		}
	}

	res, err := s.analyzer.Analyze(ctx, lookup.BuildPrompt(req.Word, target, req.Language))
	if err != nil {
		return lookup.Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if res.Synonyms == nil {
		res.Synonyms = []string{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, res); err != nil {
			slog.Warn("lookup cache write failed", "word", req.Word, "error", err)
		}
	}

	slog.Info("word processed", "word", req.Word)
	return res, nil
}
