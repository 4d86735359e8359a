package lookup

import (
	"regexp"
	"strings"
)

// ExtractSentence returns the first sentence of context that contains word
// as a whole word, matched case-insensitively. Sentences end at '.', '!' or
// '?'. When nothing matches, the full context is returned.
func ExtractSentence(word, context string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return context
	}

	re, err := regexp.Compile(`(?i)[^.!?]*\b` + regexp.QuoteMeta(word) + `\b[^.!?]*[.!?]`)
	if err != nil {
		return context
	}

	match := re.FindString(context)
	if match == "" {
		return context
	}
	return strings.TrimSpace(match)
}
