// Package tui provides the Bubble Tea word scramble front end.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/wordserver/internal/command"
	"github.com/verte-zerg/wordserver/internal/game"
	"github.com/verte-zerg/wordserver/internal/model"
)

// Invoker calls backend commands the way a front end would.
type Invoker interface {
	Invoke(ctx context.Context, name string, args json.RawMessage) (any, error)
}

// History persists finished rounds.
type History interface {
	InsertRound(ctx context.Context, r model.RoundResult) (int64, error)
	Summary(ctx context.Context, path string) (model.Summary, error)
}

type wordsLoadedMsg struct {
	words []string
	err   error
}

// Model implements the Bubble Tea game UI.
type Model struct {
	invoker  Invoker
	history  History
	gen      *game.Generator
	log      zerolog.Logger
	listPath string
	now      func() time.Time

	width  int
	height int

	input    textinput.Model
	loading  bool
	loadErr  string
	playable []string
	round    game.Round
	score    game.Score
	feedback string

	allTime model.Summary
}

var (
	scrambleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	solvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	missedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a game model. listPath may be empty for the default list.
func NewModel(invoker Invoker, history History, gen *game.Generator, listPath string, log zerolog.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "your guess"
	input.CharLimit = 64
	input.Focus()
	m := &Model{
		invoker:  invoker,
		history:  history,
		gen:      gen,
		log:      log,
		listPath: listPath,
		now:      time.Now,
		input:    input,
		loading:  true,
	}
	m.loadAllTime()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadWords)
}

func (m *Model) loadWords() tea.Msg {
	args := map[string]any{"path": nil}
	if m.listPath != "" {
		args["path"] = m.listPath
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return wordsLoadedMsg{err: err}
	}
	out, err := m.invoker.Invoke(context.Background(), command.LoadWordserverName, raw)
	if err != nil {
		return wordsLoadedMsg{err: err}
	}
	words, ok := out.([]string)
	if !ok {
		return wordsLoadedMsg{err: fmt.Errorf("unexpected result %T", out)}
	}
	return wordsLoadedMsg{words: words}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case wordsLoadedMsg:
		m.handleLoaded(msg)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		case tea.KeyTab:
			m.skip()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleLoaded(msg wordsLoadedMsg) {
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err.Error()
		m.log.Error().Err(msg.err).Msg("failed to load word list")
		return
	}
	m.playable = game.Playable(msg.words)
	m.log.Info().Int("words", len(msg.words)).Int("playable", len(m.playable)).Msg("word list loaded")
	if len(m.playable) == 0 {
		m.loadErr = game.ErrNoPlayableWords.Error()
		return
	}
	m.nextRound()
}

func (m *Model) nextRound() {
	round, err := m.gen.NewRound(m.playable, m.now())
	if err != nil {
		m.loadErr = err.Error()
		return
	}
	m.round = round
	m.input.Reset()
}

func (m *Model) playing() bool {
	return !m.loading && m.loadErr == "" && m.round.Word != ""
}

func (m *Model) submit() {
	if !m.playing() {
		return
	}
	guess := m.input.Value()
	if strings.TrimSpace(guess) == "" {
		return
	}
	if m.round.Check(guess) {
		m.finish(guess, model.OutcomeSolved)
		m.feedback = solvedStyle.Render("✓ " + m.round.Word)
	} else {
		m.finish(guess, model.OutcomeMissed)
		m.feedback = missedStyle.Render(fmt.Sprintf("✗ %s (was %s)", strings.TrimSpace(guess), m.round.Word))
	}
	m.nextRound()
}

func (m *Model) skip() {
	if !m.playing() {
		return
	}
	m.finish("", model.OutcomeSkipped)
	m.feedback = footerStyle.Render("skipped " + m.round.Word)
	m.nextRound()
}

func (m *Model) finish(guess string, outcome model.Outcome) {
	m.score.Record(outcome)
	if m.history == nil {
		return
	}
	result := m.round.Finish(guess, outcome, m.listPath, m.now())
	if _, err := m.history.InsertRound(context.Background(), result); err != nil {
		m.log.Error().Err(err).Msg("failed to save round")
		return
	}
	m.loadAllTime()
}

func (m *Model) loadAllTime() {
	if m.history == nil {
		return
	}
	sum, err := m.history.Summary(context.Background(), m.listPath)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load history summary")
		return
	}
	m.allTime = sum
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch {
	case m.loading:
		content = "Loading word list..."
	case m.loadErr != "":
		content = errorStyle.Render(m.loadErr) + "\n\n" + footerStyle.Render("esc to quit")
	default:
		lines := []string{
			scrambleStyle.Render(strings.ToUpper(m.round.Scrambled)),
			"",
			m.input.View(),
		}
		if m.feedback != "" {
			lines = append(lines, "", m.feedback)
		}
		content = strings.Join(lines, "\n")
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Solved %d", m.score.Solved),
		fmt.Sprintf("Missed %d", m.score.Missed),
		fmt.Sprintf("Streak %d (best %d)", m.score.Streak, m.score.Best),
	}
	if m.allTime.Rounds > 0 {
		segments = append(segments, fmt.Sprintf("All-time %.1f%% of %d", m.allTime.Accuracy()*100, m.allTime.Rounds))
	}
	segments = append(segments, "enter guess · tab skip · esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}
