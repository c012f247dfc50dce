package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordserver/internal/model"
)

func TestColumnsFit(t *testing.T) {
	lines := Columns([]string{"cat", "dog", "fish", "emu", "owl"}, 12)
	// cell width 4, gap 2: two columns, three rows, filled down then across
	want := []string{"cat   emu", "dog   owl", "fish"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected layout: %q", lines)
	}
}

func TestColumnsNarrow(t *testing.T) {
	lines := Columns([]string{"alphabet", "b"}, 3)
	if len(lines) != 2 || lines[0] != "alphabet" || lines[1] != "b" {
		t.Fatalf("expected one column, got %q", lines)
	}
}

func TestColumnsWideRunes(t *testing.T) {
	lines := Columns([]string{"日本", "ab"}, 20)
	if len(lines) != 1 || lines[0] != "日本  ab" {
		t.Fatalf("unexpected layout: %q", lines)
	}
}

func TestWriteWordsNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWords(&buf, []string{"cat", "dog"}); err != nil {
		t.Fatalf("write words: %v", err)
	}
	if buf.String() != "cat\ndog\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestFormatTableAlign(t *testing.T) {
	lines := formatTable([]string{"Word", "Time"}, [][]string{{"a", "1.0s"}, {"longer", "12.5s"}}, map[int]bool{1: true})
	want := []string{"Word    Time", "a       1.0s", "longer 12.5s"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected table: %q", lines)
	}
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	rounds := []model.RoundResult{{
		EndedAt:    time.Unix(0, 0),
		Word:       "fish",
		Scrambled:  "shif",
		Guess:      "fish",
		Outcome:    model.OutcomeSolved,
		DurationMs: 2500,
	}}
	sum := model.Summary{Rounds: 1, Solved: 1, AvgSolveMs: 2500}
	if err := WriteHistory(&buf, rounds, sum); err != nil {
		t.Fatalf("write history: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Word", "shif", "solved", "2.5s", "1 rounds", "100.0% accuracy", "avg 2.5s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryLineEmpty(t *testing.T) {
	if got := SummaryLine(model.Summary{}); got != "No rounds played yet" {
		t.Fatalf("unexpected summary %q", got)
	}
}
