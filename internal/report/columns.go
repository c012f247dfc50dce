package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	columnGap           = 2
)

// Columns lays words out top-to-bottom in as many columns as fit in width.
func Columns(words []string, width int) []string {
	if len(words) == 0 {
		return nil
	}
	cell := 0
	for _, w := range words {
		if n := runewidth.StringWidth(w); n > cell {
			cell = n
		}
	}
	cols := (width + columnGap) / (cell + columnGap)
	if cols < 1 {
		cols = 1
	}
	rows := (len(words) + cols - 1) / cols

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(words) {
				break
			}
			if c > 0 {
				b.WriteString(strings.Repeat(" ", columnGap))
			}
			b.WriteString(runewidth.FillRight(words[i], cell))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

// WriteWords prints words in columns on a terminal and one per line otherwise.
func WriteWords(w io.Writer, words []string) error {
	lines := words
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		lines = Columns(words, terminalWidth(file))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func terminalWidth(file *os.File) int {
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
