package reader

import (
	"strings"
)

// Mode is the document's display mode.
type Mode int

const (
	Editing Mode = iota
	Reading
)

func (m Mode) String() string {
	if m == Reading {
		return "reading"
	}
	return "editing"
}

// punctuation is stripped from tokens before lookup.
const punctuation = ".,!?;:()"

// CleanWord trims token and removes every punctuation character from it.
func CleanWord(token string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(token))
}

// Paragraph is one line of the confirmed text.
type Paragraph struct {
	Text   string
	Tokens []string
}

// Document holds the text being read and the pending edit input.
// It is not safe for concurrent use.
type Document struct {
	text  string
	input string
}

// SetInput replaces the pending input without touching the visible text.
func (d *Document) SetInput(s string) {
	d.input = s
}

func (d *Document) Input() string {
	return d.input
}

// Confirm copies the input to the visible text. Blank input is ignored and
// reports false.
func (d *Document) Confirm() bool {
	if strings.TrimSpace(d.input) == "" {
		return false
	}
	d.text = d.input
	return true
}

// Clear empties both the visible text and the input.
func (d *Document) Clear() {
	d.text = ""
	d.input = ""
}

func (d *Document) Text() string {
	return d.text
}

// Mode is derived from the text: a blank document is always in editing mode.
func (d *Document) Mode() Mode {
	if strings.TrimSpace(d.text) == "" {
		return Editing
	}
	return Reading
}

// Paragraphs splits the text on newlines and each line on whitespace.
// Blank lines are kept with no tokens.
func (d *Document) Paragraphs() []Paragraph {
	if d.Mode() == Editing {
		return nil
	}
	lines := strings.Split(d.text, "\n")
	out := make([]Paragraph, 0, len(lines))
	for _, line := range lines {
		out = append(out, Paragraph{Text: line, Tokens: strings.Fields(line)})
	}
	return out
}

// FindToken returns the position of the first token whose cleaned form
// equals the cleaned word, ignoring case.
func (d *Document) FindToken(word string) (paragraph, index int, ok bool) {
	want := CleanWord(word)
	if want == "" {
		return 0, 0, false
	}
	for p, para := range d.Paragraphs() {
		for i, tok := range para.Tokens {
			if strings.EqualFold(CleanWord(tok), want) {
				return p, i, true
			}
		}
	}
	return 0, 0, false
}
