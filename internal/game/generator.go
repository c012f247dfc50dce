// Package game implements the word scramble played with a loaded word list.
package game

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/wordserver/internal/wordlist"
)

// ErrNoPlayableWords is returned when a list has nothing to scramble.
var ErrNoPlayableWords = errors.New("word list has no playable words")

// Generator picks and scrambles words.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Playable filters words down to those worth scrambling.
func Playable(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if wordlist.Playable(w) && len([]rune(w)) >= 2 {
			out = append(out, w)
		}
	}
	return out
}

// Pick selects a word uniformly from playable.
func (g *Generator) Pick(playable []string) (string, error) {
	if len(playable) == 0 {
		return "", ErrNoPlayableWords
	}
	return playable[g.rnd.Intn(len(playable))], nil
}

// Scramble shuffles the runes of word, avoiding the original order when possible.
func (g *Generator) Scramble(word string) string {
	runes := []rune(strings.ToLower(word))
	if !hasDistinct(runes) {
		return string(runes)
	}
	original := string(runes)
	for {
		g.rnd.Shuffle(len(runes), func(i, j int) { runes[i], runes[j] = runes[j], runes[i] })
		if string(runes) != original {
			return string(runes)
		}
	}
}

// NewRound picks a word and scrambles it.
func (g *Generator) NewRound(playable []string, now time.Time) (Round, error) {
	word, err := g.Pick(playable)
	if err != nil {
		return Round{}, err
	}
	return Round{Word: word, Scrambled: g.Scramble(word), StartedAt: now}, nil
}

func hasDistinct(runes []rune) bool {
	for i := 1; i < len(runes); i++ {
		if runes[i] != runes[0] {
			return true
		}
	}
	return false
}
