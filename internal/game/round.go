package game

import (
	"strings"
	"time"

	"github.com/verte-zerg/wordserver/internal/model"
)

// Round is one puzzle in play.
type Round struct {
	Word      string
	Scrambled string
	StartedAt time.Time
}

// Check reports whether guess solves the round, ignoring case and surrounding space.
func (r Round) Check(guess string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), r.Word)
}

// Finish turns the round into a result for storage.
func (r Round) Finish(guess string, outcome model.Outcome, listPath string, now time.Time) model.RoundResult {
	return model.RoundResult{
		StartedAt:    r.StartedAt,
		EndedAt:      now,
		WordListPath: listPath,
		Word:         r.Word,
		Scrambled:    r.Scrambled,
		Guess:        strings.TrimSpace(guess),
		Outcome:      outcome,
		DurationMs:   now.Sub(r.StartedAt).Milliseconds(),
	}
}

// Score tallies a play session.
type Score struct {
	Solved  int
	Missed  int
	Skipped int
	Streak  int
	Best    int
}

// Record applies an outcome.
func (s *Score) Record(o model.Outcome) {
	switch o {
	case model.OutcomeSolved:
		s.Solved++
		s.Streak++
		if s.Streak > s.Best {
			s.Best = s.Streak
		}
	case model.OutcomeMissed:
		s.Missed++
		s.Streak = 0
	case model.OutcomeSkipped:
		s.Skipped++
		s.Streak = 0
	}
}
