// Package readability computes readability indexes over raw text.
package readability

import "github.com/straygizmo/gocefrizer/internal/textio"

// ARI computes the Automated Readability Index.
// Formula: 4.71*(characters/words) + 0.5*(words/sentences) - 21.43
// Characters = letters and digits only.
func ARI(text string) float64 {
	words := textio.CountWords(text)
	if words == 0 {
		return 0
	}
	sentences := textio.CountSentences(text)
	if sentences == 0 {
		return 0
	}
	characters := textio.CountCharacters(text)

	return 4.71*float64(characters)/float64(words) +
		0.5*float64(words)/float64(sentences) -
		21.43
}
