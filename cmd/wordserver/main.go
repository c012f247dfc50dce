// Package main provides the CLI entrypoint for wordserver.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordserver/internal/command"
	"github.com/verte-zerg/wordserver/internal/config"
	"github.com/verte-zerg/wordserver/internal/game"
	"github.com/verte-zerg/wordserver/internal/host"
	"github.com/verte-zerg/wordserver/internal/logger"
	"github.com/verte-zerg/wordserver/internal/model"
	"github.com/verte-zerg/wordserver/internal/report"
	"github.com/verte-zerg/wordserver/internal/store"
	"github.com/verte-zerg/wordserver/internal/tui"
	"github.com/verte-zerg/wordserver/internal/wordlist"
)

const defaultAddr = "127.0.0.1:8114"

var (
	debug bool

	wordsPath string
	dbPath    string
	logFile   string

	serveAddr string

	historyLast  int
	historySince string
	historyAll   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordserver",
		Short:         "Word list backend with a word scramble front end",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&wordsPath, "words", "", "word list path (default "+wordlist.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file used while the game is running")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newCommandsCmd())

	return rootCmd
}

// loadFileConfig applies config values to flags the user did not set.
func loadFileConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "words", &wordsPath, fileCfg.Words.Path)
	applyStringConfig(cmd, "db", &dbPath, fileCfg.Game.DBPath)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Game.LogFile)
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Server.Addr)
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	if logFile == "" {
		logFile = config.DefaultLogPath()
	}
	return nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	if err := loadFileConfig(cmd); err != nil {
		return err
	}
	log, closeLog, err := logger.NewFile(logFile, debug)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", cerr)
		}
	}()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close db")
		}
	}()

	m := tui.NewModel(command.Default(), st, game.New(), wordsPath, logger.Component(log, "tui"))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve commands to front ends over HTTP and WebSocket",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "listen address")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	if err := loadFileConfig(cmd); err != nil {
		return err
	}
	log := logger.NewConsole(debug)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := host.NewServer(command.Default(), log)
	if err := srv.ListenAndServe(ctx, serveAddr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words [path]",
		Short: "Load a word list and print its entries",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWordsCmd,
	}
}

func runWordsCmd(cmd *cobra.Command, args []string) error {
	if err := loadFileConfig(cmd); err != nil {
		return err
	}
	path := wordsPath
	if len(args) == 1 {
		path = args[0]
	}
	words, err := invokeLoad(cmd.Context(), command.Default(), path)
	if err != nil {
		return err
	}
	return report.WriteWords(cmd.OutOrStdout(), words)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show played rounds",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 20, "limit to last N rounds (0 for all)")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&historyAll, "all", false, "include rounds from every word list")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if err := loadFileConfig(cmd); err != nil {
		return err
	}
	filter := model.HistoryFilter{Last: historyLast}
	if !historyAll {
		filter.WordListPath = wordsPath
	}
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	rounds, err := st.ListRounds(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list rounds: %w", err)
	}
	sum, err := st.Summary(ctx, filter.WordListPath)
	if err != nil {
		return fmt.Errorf("failed to summarize rounds: %w", err)
	}
	return report.WriteHistory(cmd.OutOrStdout(), rounds, sum)
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List commands and capabilities available to front ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeCommands(cmd, command.Default())
		},
	}
}

func writeCommands(cmd *cobra.Command, reg *command.Registry) error {
	out := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(out, "capabilities: %s\n", strings.Join(reg.Capabilities(), ", ")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if f := cmd.Flags().Lookup(name); f == nil || f.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordserver configuration
# Uncomment a value to enable it. CLI flags override config values.

[words]
# path = %q   # Word list, one entry per line

[server]
# addr = %q   # Listen address for "wordserver serve"

[game]
# db-path = %q
# log-file = %q
`,
		wordlist.DefaultPath,
		defaultAddr,
		config.DefaultDBPath(),
		config.DefaultLogPath(),
	)
}
