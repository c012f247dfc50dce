package wordlist

import "unicode"

// Playable reports whether word is a single run of letters, suitable for a puzzle.
// The loader never applies it; front ends decide what to show.
func Playable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
