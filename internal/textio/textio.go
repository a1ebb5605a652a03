// Package textio extracts analyzable plain text from raw, Markdown and
// HTML sources and provides the basic text counts shared by the
// readability and validation code.
package textio

import (
	"strings"
	"unicode"
)

// CountWords returns the number of whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountCharacters returns the number of letters and digits.
func CountCharacters(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// CountSentences returns the number of sentences in text.
// Non-empty text without a terminator counts as one sentence.
func CountSentences(text string) int {
	return len(SplitSentences(text))
}

// abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]struct{}{
	"mr":   {},
	"mrs":  {},
	"ms":   {},
	"dr":   {},
	"prof": {},
	"sr":   {},
	"jr":   {},
	"st":   {},
	"vs":   {},
	"etc":  {},
	"e.g":  {},
	"i.e":  {},
	"fig":  {},
	"vol":  {},
}

// SplitSentences splits text into sentences on ./!/? terminators.
// A period does not terminate a sentence when it follows a known
// abbreviation or sits inside a number (3.14), or when the next
// non-space rune is lowercase.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	flush := func(end int) {
		s := strings.TrimSpace(string(runes[start:end]))
		if s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		if r == '.' {
			if isDecimalPoint(runes, i) || isAbbreviation(runes, start, i) {
				continue
			}
			if next := nextNonSpace(runes, i+1); next >= 0 && unicode.IsLower(runes[next]) {
				continue
			}
		}

		// Absorb runs of terminators ("?!", "...").
		end := i + 1
		for end < len(runes) && (runes[end] == '.' || runes[end] == '!' || runes[end] == '?') {
			end++
		}
		flush(end)
		i = end - 1
	}

	flush(len(runes))
	return sentences
}

func isDecimalPoint(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) &&
		unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}

func isAbbreviation(runes []rune, start, i int) bool {
	// Walk back to the beginning of the word preceding the period.
	w := i
	for w > start && (unicode.IsLetter(runes[w-1]) || runes[w-1] == '.') {
		w--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[w:i]), "."))
	_, ok := abbreviations[word]
	return ok
}

func nextNonSpace(runes []rune, from int) int {
	for i := from; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}
