package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/number-master/internal/audio"
	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/core"
	"github.com/vovakirdan/number-master/internal/platform/console"
	"github.com/vovakirdan/number-master/internal/platform/tui"
	"github.com/vovakirdan/number-master/internal/prefs"
	"github.com/vovakirdan/number-master/internal/session"
)

var (
	flagDifficulty string
	flagPlain      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Number Master",
	Long: `Start Number Master. A full-screen UI is used when stdin and stdout are
terminals; otherwise (or with --plain) the game reads commands line by line.

Controls (full screen):
  0-9, Enter  - Type and submit a guess / start a round
  Ctrl+N      - New game
  Tab         - Settings (d: difficulty, s: sound, m: dark mode)
  F1          - Help
  Ctrl+C      - Quit

Console commands:
  <number>, new, difficulty [level], sound, dark, status, help, quit

Difficulty levels:
  easy    - 1-50, 10 guesses, 2 min
  medium  - 1-100, 8 guesses, 1.5 min
  hard    - 1-200, 6 guesses, 1 min
  expert  - 1-500, 5 guesses, 45 sec

Examples:
  numbermaster play
  numbermaster play --difficulty expert
  echo -e "new\n50\nquit" | numbermaster play --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// addPlayFlags registers the play flags on cmd.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Select and save a difficulty: easy, medium, hard, expert")
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the line-oriented console even on a terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	interactive := !flagPlain &&
		term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))

	// Validate before touching the terminal
	var difficulty config.Difficulty
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	logger, closeLog := newLogger(interactive)
	defer closeLog()

	profiles, err := config.LoadProfiles(flagProfiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profiles: %v\n", err)
		os.Exit(1)
	}

	kv, closeStore := openPreferences(logger)
	defer closeStore()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	player := audio.NewPlayer(audio.MultiSink{
		audio.NewBellSink(os.Stderr),
		audio.NewLogSink(logger),
	})

	deps := session.Deps{
		Runtime:  cfg,
		Profiles: profiles,
		Store:    prefs.NewStore(kv),
		Player:   player,
		Logger:   logger,
	}

	var runErr error
	if interactive {
		timer := tui.NewTimer()
		deps.Timer = timer
		sess := newSession(deps, difficulty, logger)
		runErr = tui.Run(sess, timer, cfg)
	} else {
		ticker := console.NewTickerTimer(time.Second)
		deps.Timer = ticker
		sess := newSession(deps, difficulty, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		runErr = console.New(sess, ticker, os.Stdout).Run(ctx, os.Stdin)
		if errors.Is(runErr, context.Canceled) {
			runErr = nil
		}
	}

	if runErr != nil {
		logger.Error("game ended with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeStore()
		closeLog()
		os.Exit(1)
	}
}

// newSession builds the session and applies the --difficulty selection.
func newSession(deps session.Deps, d config.Difficulty, logger *log.Logger) *session.Session {
	sess := session.New(deps)
	if d != "" {
		if err := sess.SetDifficulty(d); err != nil {
			logger.Warn("difficulty not saved", "error", err)
		}
	}
	return sess
}
