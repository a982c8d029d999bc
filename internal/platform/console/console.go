// Package console runs Number Master as a line-oriented game on plain
// streams, for pipes and terminals without full-screen support.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/core"
	"github.com/vovakirdan/number-master/internal/games/guess"
	"github.com/vovakirdan/number-master/internal/prefs"
	"github.com/vovakirdan/number-master/internal/session"
)

// Ticker is a Timer whose ticks arrive on a channel.
type Ticker interface {
	guess.Timer
	C() <-chan time.Time
}

// Console drives a session from text commands.
type Console struct {
	sess  *session.Session
	timer Ticker
	out   io.Writer
}

// New creates a console. timer must be the Timer the session was built with.
func New(sess *session.Session, timer Ticker, out io.Writer) *Console {
	return &Console{sess: sess, timer: timer, out: out}
}

// Run reads commands from in until quit, end of input, or ctx is done.
// All session calls happen on the calling goroutine.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, errc := scanLines(ctx, in)
	c.banner()

	for {
		select {
		case <-ctx.Done():
			c.timer.Stop()
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				c.timer.Stop()
				select {
				case err := <-errc:
					if err != nil {
						return fmt.Errorf("console: read input: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := c.handleLine(line); quit {
				c.timer.Stop()
				return nil
			}

		case <-c.timer.C():
			c.tick()
		}
	}
}

// scanLines reads in line by line on its own goroutine. The lines channel is
// closed at end of input or once ctx is done; a read error, if any, is sent
// on the error channel first.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) banner() {
	c.printf("🎯 Number Master - The ultimate number guessing challenge\n")
	c.printf("Difficulty: %s\n", c.describe(c.sess.Settings().Difficulty))
	c.printf("Type 'new' to start a game or 'help' for commands.\n")
}

func (c *Console) describe(d config.Difficulty) string {
	return c.sess.Profiles().Get(d).Describe(d)
}

// handleLine runs one command or guess. It reports whether to quit.
func (c *Console) handleLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		c.printf("Bye!\n")
		return true
	case "new", "n", "again":
		c.printf("%s\n", c.sess.StartNewGame())
	case "difficulty", "d":
		c.changeDifficulty(fields[1:])
	case "sound":
		c.saved(c.sess.ToggleSound())
		c.printf("Sound effects: %s\n", prefs.OnOff(c.sess.Settings().SoundEnabled))
	case "dark":
		c.saved(c.sess.ToggleDarkMode())
		c.printf("Dark mode: %s\n", prefs.OnOff(c.sess.Settings().DarkMode))
	case "status", "s":
		c.printStatus()
	case "help", "h", "?":
		c.printHelp()
	default:
		c.guess(line)
	}
	return false
}

func (c *Console) changeDifficulty(args []string) {
	var err error
	if len(args) == 0 {
		err = c.sess.CycleDifficulty()
	} else {
		var d config.Difficulty
		d, err = config.ParseDifficulty(args[0])
		if err != nil {
			c.printf("%v\n", err)
			return
		}
		err = c.sess.SetDifficulty(d)
	}
	c.saved(err)

	d := c.sess.Settings().Difficulty
	c.printf("Difficulty: %s\n", c.describe(d))
	if c.sess.Status() == guess.StatusPlaying {
		c.printf("The new difficulty applies to the next round.\n")
	}
}

// saved reports a settings persistence failure without stopping play.
func (c *Console) saved(err error) {
	if err != nil {
		c.printf("⚠ settings not saved: %v\n", err)
	}
}

func (c *Console) guess(raw string) {
	if c.sess.Status() != guess.StatusPlaying {
		c.printf("No round in progress. Type 'new' to start.\n")
		return
	}

	res := c.sess.Submit(raw)
	c.printf("%s\n", res.Hint)
	if res.Status == guess.StatusPlaying {
		c.printStatus()
	}
	if res.Status.Terminal() {
		c.printf("Type 'new' to play again.\n")
	}
}

// tick forwards one second and announces milestones and timeouts.
func (c *Console) tick() {
	if c.sess.Tick() {
		c.printf("%s\nType 'new' to play again.\n", c.sess.Snapshot().Hint)
		return
	}
	left := c.sess.Snapshot().RemainingSeconds
	if left == 30 || left == 10 || (left > 0 && left <= 5) {
		c.printf("⏱ %s left\n", core.FormatClock(left))
	}
}

func (c *Console) printStatus() {
	snap := c.sess.Snapshot()
	if snap.Status == guess.StatusNotStarted {
		c.printf("No round in progress. Difficulty: %s\n", c.describe(c.sess.Settings().Difficulty))
		return
	}

	c.printf("[%s] ⏱ %s | %d guesses left | Range: %d - %d\n",
		strings.ToUpper(snap.Status.String()),
		core.FormatClock(snap.RemainingSeconds),
		snap.GuessesLeft,
		snap.Profile.Min, snap.Profile.Max)

	if len(snap.Attempts) > 0 {
		marks := make([]string, len(snap.Attempts))
		for i, a := range snap.Attempts {
			marks[i] = fmt.Sprintf("%d%s", a.Value, arrow(a.Direction))
		}
		c.printf("Previous Guesses (%d): %s\n", len(snap.Attempts), strings.Join(marks, " "))
	}
}

// arrow points toward the target.
func arrow(d guess.Direction) string {
	switch d {
	case guess.DirectionHigher:
		return "↑"
	case guess.DirectionLower:
		return "↓"
	default:
		return "✓"
	}
}

func (c *Console) printHelp() {
	c.printf(`Commands:
  <number>            guess a number
  new                 start a new round
  difficulty [level]  set (or cycle) easy, medium, hard, expert
  sound               toggle sound effects
  dark                toggle dark mode
  status              show time, guesses and range
  help                show this help
  quit                leave the game
`)
}
