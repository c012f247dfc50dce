package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/verte-zerg/wordserver/internal/model"
)

// WriteHistory prints rounds as a table followed by the summary line.
func WriteHistory(w io.Writer, rounds []model.RoundResult, sum model.Summary) error {
	rows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, []string{
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			r.Word,
			r.Scrambled,
			r.Guess,
			string(r.Outcome),
			formatSeconds(r.DurationMs),
		})
	}
	lines := formatTable([]string{"When", "Word", "Shown", "Guess", "Outcome", "Time"}, rows, map[int]bool{5: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, SummaryLine(sum)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// SummaryLine renders a one-line summary.
func SummaryLine(sum model.Summary) string {
	if sum.Rounds == 0 {
		return "No rounds played yet"
	}
	line := fmt.Sprintf("%d rounds · %d solved · %d missed · %d skipped · %.1f%% accuracy",
		sum.Rounds, sum.Solved, sum.Missed, sum.Skipped, sum.Accuracy()*100)
	if sum.Solved > 0 {
		line += " · avg " + formatSeconds(sum.AvgSolveMs)
	}
	return line
}

func formatSeconds(ms int64) string {
	return strconv.FormatFloat(time.Duration(ms*int64(time.Millisecond)).Seconds(), 'f', 1, 64) + "s"
}
