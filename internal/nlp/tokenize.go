package nlp

import (
	"strings"
	"unicode"
)

// rawToken is a pre-annotation token: surface form plus a punctuation flag.
type rawToken struct {
	text  string
	punct bool
}

// tokenize splits a sentence into word and punctuation tokens.
// Apostrophes and hyphens are kept word-internal ("don't", "well-known");
// the n't/'s/'ll clitics are not split off. Every punctuation rune
// becomes its own token.
func tokenize(text string) []rawToken {
	var tokens []rawToken
	runes := []rune(text)

	i := 0
	for i < len(runes) {
		r := runes[i]

		if unicode.IsSpace(r) {
			i++
			continue
		}

		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsLetter(c) || unicode.IsDigit(c) {
					i++
					continue
				}
				// Word-internal apostrophe, hyphen or decimal point.
				if (c == '\'' || c == '’' || c == '-' || c == '.') &&
					i+1 < len(runes) && isWordRune(runes[i+1]) && i > start {
					if c == '.' && !unicode.IsDigit(runes[i+1]) {
						break
					}
					i += 2
					continue
				}
				break
			}
			tokens = append(tokens, rawToken{text: string(runes[start:i])})
			continue
		}

		tokens = append(tokens, rawToken{text: string(r), punct: true})
		i++
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isNumeric reports whether the token is a number form (12, 3.5, 1,000).
func isNumeric(text string) bool {
	hasDigit := false
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',' || r == '-':
		default:
			return false
		}
	}
	return hasDigit
}

// isCapitalized reports whether the surface form starts with an upper-case
// letter and is not fully upper-case (acronyms stay opaque).
func isCapitalized(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	return len(runes) == 1 || strings.ToUpper(text) != text
}
