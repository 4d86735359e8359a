package lookup

import (
	"fmt"
	"strings"
)

// Prompt is the pair of chat messages sent to the model.
type Prompt struct {
	System string
	User   string
}

const systemPromptTemplate = `You are a linguistic expert. Respond ONLY in valid JSON.
The "definition" and "context_definition" must be in ENGLISH.
The "word_translation" and "sentence_translation" must be in %[1]s.

Structure:
{
  "definition": "English dictionary definition",
  "synonyms": [],
  "context_definition": "Specific meaning in this sentence (in English)",
  "word_translation": "Translation of the word to %[2]s",
  "sentence_translation": "Full translation of the sentence to %[2]s"
}`

// BuildPrompt renders the lookup prompt for word inside sentence, with
// translations requested in language.
func BuildPrompt(word, sentence, language string) Prompt {
	return Prompt{
		System: fmt.Sprintf(systemPromptTemplate, strings.ToUpper(language), language),
		User:   fmt.Sprintf("Word: %q. Context Sentence: %q", word, sentence),
	}
}
