package wordlist

import "testing"

func TestPlayable(t *testing.T) {
	for _, word := range []string{"hello", "résumé", "Straße"} {
		if !Playable(word) {
			t.Fatalf("expected %q to be playable", word)
		}
	}
	for _, word := range []string{"", "don't", "co-op", "two words", "r2d2"} {
		if Playable(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
