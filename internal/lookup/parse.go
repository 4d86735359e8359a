package lookup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNotObject = errors.New("content is not a JSON object")

// ParseResult decodes the model's message content into a Result.
//
// Models do not always honor the requested shape: a field may come back as
// an object such as {"pt": "correr"} or as a one-element list. Text fields
// take the first value in document order; anything that is not text becomes
// the empty string. Synonyms accept a list or a single string.
func ParseResult(content string) (Result, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Result{}, fmt.Errorf("parse model content: %w", err)
	}
	if raw == nil {
		return Result{}, fmt.Errorf("parse model content: %w", errNotObject)
	}

	return Result{
		Definition:          normalizeText(raw["definition"]),
		Synonyms:            normalizeList(raw["synonyms"]),
		ContextDefinition:   normalizeText(raw["context_definition"]),
		WordTranslation:     normalizeText(raw["word_translation"]),
		SentenceTranslation: normalizeText(raw["sentence_translation"]),
	}, nil
}

func normalizeText(msg json.RawMessage) string {
	if len(msg) == 0 {
		return ""
	}
	return strings.TrimSpace(firstString(json.NewDecoder(bytes.NewReader(msg))))
}

// firstString walks into objects and arrays until it reaches the first
// scalar. Only string scalars yield text.
func firstString(dec *json.Decoder) string {
	tok, err := dec.Token()
	if err != nil {
		return ""
	}
	switch t := tok.(type) {
	case string:
		return t
	case json.Delim:
		switch t {
		case '{':
			if !dec.More() {
				return ""
			}
			if _, err := dec.Token(); err != nil { // key
				return ""
			}
			return firstString(dec)
		case '[':
			if !dec.More() {
				return ""
			}
			return firstString(dec)
		}
	}
	return ""
}

func normalizeList(msg json.RawMessage) []string {
	out := []string{}
	if len(msg) == 0 {
		return out
	}

	dec := json.NewDecoder(bytes.NewReader(msg))
	tok, err := dec.Token()
	if err != nil {
		return out
	}

	switch t := tok.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	case json.Delim:
		if t != '[' {
			return out
		}
		for dec.More() {
			var elem json.RawMessage
			if err := dec.Decode(&elem); err != nil {
				return out
			}
			if s := normalizeText(elem); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
