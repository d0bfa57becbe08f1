package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultBannedWords is used when no list is configured.
var DefaultBannedWords = []string{"apache", "attack", "helicopter"}

// BannedWords is an ordered list of substrings a gender may not contain.
type BannedWords struct {
	words  []string
	folded []string
}

// NewBannedWords keeps the given order and drops blank entries.
func NewBannedWords(words ...string) BannedWords {
	fold := cases.Fold()
	list := BannedWords{
		words:  make([]string, 0, len(words)),
		folded: make([]string, 0, len(words)),
	}
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		list.words = append(list.words, word)
		list.folded = append(list.folded, fold.String(word))
	}

	return list
}

func (b BannedWords) Words() []string {
	return append([]string(nil), b.words...)
}

func (b BannedWords) Len() int {
	return len(b.words)
}

// Violation returns the first list entry contained in text, ignoring case.
// List order decides which word is reported, not the position in text.
func (b BannedWords) Violation(text string) (string, bool) {
	if text == "" || len(b.words) == 0 {
		return "", false
	}

	haystack := cases.Fold().String(text)
	for i, needle := range b.folded {
		if strings.Contains(haystack, needle) {
			return b.words[i], true
		}
	}

	return "", false
}
