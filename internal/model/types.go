// Package model defines shared data structures.
package model

import "time"

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeSolved  Outcome = "solved"
	OutcomeMissed  Outcome = "missed"
	OutcomeSkipped Outcome = "skipped"
)

// RoundResult captures one finished scramble round.
type RoundResult struct {
	ID           int64
	StartedAt    time.Time
	EndedAt      time.Time
	WordListPath string
	Word         string
	Scrambled    string
	Guess        string
	Outcome      Outcome
	DurationMs   int64
}

// HistoryFilter narrows round listings.
type HistoryFilter struct {
	WordListPath string
	Since        *time.Time
	Last         int
}

// Summary aggregates rounds for one word list (or all when the path is empty).
type Summary struct {
	Rounds     int
	Solved     int
	Missed     int
	Skipped    int
	AvgSolveMs int64
}

// Accuracy is solved over attempted (skips excluded).
func (s Summary) Accuracy() float64 {
	attempted := s.Solved + s.Missed
	if attempted == 0 {
		return 0
	}
	return float64(s.Solved) / float64(attempted)
}
