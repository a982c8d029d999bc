package guess

import (
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/number-master/internal/audio"
	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/core"
)

var medium = config.Profile{Min: 1, Max: 100, MaxGuesses: 8, TimeLimitSeconds: 90}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingEmitter struct {
	cues [][]audio.Tone
}

func (r *recordingEmitter) Emit(tones ...audio.Tone) {
	r.cues = append(r.cues, tones)
}

func (r *recordingEmitter) last() []audio.Tone {
	if len(r.cues) == 0 {
		return nil
	}
	return r.cues[len(r.cues)-1]
}

type countingTimer struct {
	starts, stops int
	running       bool
}

func (t *countingTimer) Start() { t.starts++; t.running = true }
func (t *countingTimer) Stop()  { t.stops++; t.running = false }

type harness struct {
	engine *Engine
	clock  *fakeClock
	tones  *recordingEmitter
	timer  *countingTimer
}

// newHarness starts a round with profile p and forces the target.
func newHarness(t *testing.T, p config.Profile, target int) *harness {
	t.Helper()
	h := &harness{
		clock: &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		tones: &recordingEmitter{},
		timer: &countingTimer{},
	}
	h.engine = New(core.RuntimeConfig{Seed: 1}, WithClock(h.clock), WithTones(h.tones), WithTimer(h.timer))
	h.engine.StartNewGame(p)
	h.engine.round.target = target
	return h
}

func TestNewEngineNotStarted(t *testing.T) {
	e := New(core.RuntimeConfig{Seed: 1})
	if e.Status() != StatusNotStarted {
		t.Errorf("Status() = %v, want not-started", e.Status())
	}

	res := e.SubmitGuess("5")
	if res.Rejection != RejectNotPlaying || res.Accepted {
		t.Errorf("SubmitGuess before start = %+v, want not-playing rejection", res)
	}
	if e.Tick() {
		t.Error("Tick before start should not expire anything")
	}
	if e.Status() != StatusNotStarted {
		t.Errorf("Status changed to %v before start", e.Status())
	}
}

func TestStartNewGameTargetInRange(t *testing.T) {
	profiles := config.DefaultProfiles()
	for _, d := range config.Difficulties {
		p := profiles[d]
		e := New(core.RuntimeConfig{Seed: 7})
		for i := 0; i < 500; i++ {
			e.StartNewGame(p)
			if !p.Contains(e.round.target) {
				t.Fatalf("%s: target %d outside [%d, %d]", d, e.round.target, p.Min, p.Max)
			}
		}
	}
}

func TestStartNewGameCoversWholeRange(t *testing.T) {
	p := config.Profile{Min: 3, Max: 7, MaxGuesses: 2, TimeLimitSeconds: 10}
	e := New(core.RuntimeConfig{Seed: 99})
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		e.StartNewGame(p)
		seen[e.round.target] = true
	}
	for n := p.Min; n <= p.Max; n++ {
		if !seen[n] {
			t.Errorf("target %d never drawn in 1000 rounds", n)
		}
	}
}

func TestStartNewGameInitialState(t *testing.T) {
	h := newHarness(t, medium, 42)
	snap := h.engine.Snapshot()

	if snap.Status != StatusPlaying {
		t.Errorf("Status = %v, want playing", snap.Status)
	}
	if snap.RemainingSeconds != 90 {
		t.Errorf("RemainingSeconds = %d, want 90", snap.RemainingSeconds)
	}
	if len(snap.Attempts) != 0 || snap.GuessesLeft != 8 {
		t.Errorf("fresh round has attempts %v, left %d", snap.Attempts, snap.GuessesLeft)
	}
	if snap.Target != 0 {
		t.Error("target must not be revealed while playing")
	}
	if snap.RoundID == "" {
		t.Error("round should have an ID")
	}
	for _, want := range []string{"1", "100", "8 guesses", "90 seconds"} {
		if !strings.Contains(snap.Hint, want) {
			t.Errorf("start hint %q missing %q", snap.Hint, want)
		}
	}
	if h.timer.starts != 1 || !h.timer.running {
		t.Errorf("timer starts = %d running = %v, want started", h.timer.starts, h.timer.running)
	}
}

func TestSubmitGuessRejections(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		rejection Rejection
		hint      string
	}{
		{"below range", "0", RejectOutOfRange, "between 1 and 100"},
		{"above range", "101", RejectOutOfRange, "between 1 and 100"},
		{"not a number", "forty", RejectOutOfRange, "between 1 and 100"},
		{"empty", "", RejectOutOfRange, "between 1 and 100"},
		{"decimal", "4.5", RejectOutOfRange, "between 1 and 100"},
		{"trailing junk", "42abc", RejectOutOfRange, "between 1 and 100"},
		{"duplicate", "30", RejectDuplicate, "already guessed"},
		{"duplicate with spaces", " 30 ", RejectDuplicate, "already guessed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, medium, 42)
			h.engine.SubmitGuess("30")

			res := h.engine.SubmitGuess(tc.raw)
			if res.Accepted {
				t.Fatal("rejected input reported as accepted")
			}
			if res.Rejection != tc.rejection {
				t.Errorf("Rejection = %v, want %v", res.Rejection, tc.rejection)
			}
			if !strings.Contains(res.Hint, tc.hint) {
				t.Errorf("Hint = %q, want it to contain %q", res.Hint, tc.hint)
			}
			if res.Status != StatusPlaying {
				t.Errorf("Status = %v, want playing", res.Status)
			}
			if len(res.Guesses) != 1 || res.Guesses[0] != 30 {
				t.Errorf("Guesses = %v, want [30]", res.Guesses)
			}
			if got := h.tones.last(); len(got) != 1 || got[0].Frequency != 200 {
				t.Errorf("reject cue = %v, want one 200Hz tone", got)
			}
		})
	}
}

func TestRejectionsDoNotConsumeBudget(t *testing.T) {
	p := config.Profile{Min: 1, Max: 10, MaxGuesses: 2, TimeLimitSeconds: 60}
	h := newHarness(t, p, 5)

	h.engine.SubmitGuess("1")
	for i := 0; i < 10; i++ {
		h.engine.SubmitGuess("1")
		h.engine.SubmitGuess("99")
		h.engine.SubmitGuess("x")
	}

	if h.engine.Status() != StatusPlaying {
		t.Fatalf("Status = %v after rejections, want playing", h.engine.Status())
	}
	if left := h.engine.Snapshot().GuessesLeft; left != 1 {
		t.Errorf("GuessesLeft = %d, want 1", left)
	}
}

func TestCorrectGuessWins(t *testing.T) {
	h := newHarness(t, medium, 42)
	h.clock.Advance(12340 * time.Millisecond)

	res := h.engine.SubmitGuess("42")

	if !res.Accepted || res.Status != StatusWon {
		t.Fatalf("result = %+v, want accepted win", res)
	}
	if res.Direction != DirectionNone {
		t.Errorf("Direction = %v, want none", res.Direction)
	}
	want := "🎉 CONGRATULATIONS! 🎉 You found the number 42 in 1 guess and 12.3 seconds! You're amazing! 🌟"
	if res.Hint != want {
		t.Errorf("Hint = %q, want %q", res.Hint, want)
	}
	if h.timer.running {
		t.Error("timer should be stopped on win")
	}

	cue := h.tones.last()
	if len(cue) != 3 {
		t.Fatalf("victory cue has %d tones, want 3", len(cue))
	}
	for i := 1; i < len(cue); i++ {
		if cue[i].Frequency <= cue[i-1].Frequency || cue[i].Delay <= cue[i-1].Delay {
			t.Errorf("victory cue not ascending: %v", cue)
		}
	}

	snap := h.engine.Snapshot()
	if snap.Target != 42 {
		t.Errorf("Target = %d, want revealed 42", snap.Target)
	}
	if snap.Elapsed != 12340*time.Millisecond {
		t.Errorf("Elapsed = %v", snap.Elapsed)
	}
}

func TestWinOnLastGuessAndLastSecond(t *testing.T) {
	p := config.Profile{Min: 1, Max: 100, MaxGuesses: 3, TimeLimitSeconds: 2}
	h := newHarness(t, p, 42)
	h.engine.SubmitGuess("10")
	h.engine.SubmitGuess("20")
	h.engine.Tick()

	res := h.engine.SubmitGuess("42")
	if res.Status != StatusWon {
		t.Errorf("Status = %v, want won on final guess with one second left", res.Status)
	}
	if !strings.Contains(res.Hint, "3 guesses") {
		t.Errorf("win hint should pluralize: %q", res.Hint)
	}
}

func TestExhaustingGuessesLoses(t *testing.T) {
	p := config.Profile{Min: 1, Max: 100, MaxGuesses: 3, TimeLimitSeconds: 60}
	h := newHarness(t, p, 42)
	h.engine.SubmitGuess("1")
	h.engine.SubmitGuess("2")

	res := h.engine.SubmitGuess("3")
	if res.Status != StatusLost {
		t.Fatalf("Status = %v, want lost", res.Status)
	}
	if !strings.Contains(res.Hint, "The number was 42") {
		t.Errorf("loss hint should reveal target: %q", res.Hint)
	}
	if res.Band != BandNone {
		t.Errorf("losing guess should carry no band, got %v", res.Band)
	}
	if cue := h.tones.last(); len(cue) != 1 || cue[0].Frequency != 150 || cue[0].Wave != audio.WaveSquare {
		t.Errorf("loss cue = %v, want 150Hz square", cue)
	}
	if h.timer.running {
		t.Error("timer should be stopped on loss")
	}
}

func TestProximityHints(t *testing.T) {
	tests := []struct {
		guess     int
		band      Band
		direction Direction
		phrase    string
		pitch     float64
	}{
		{47, BandVeryHot, DirectionLower, "Very hot", 800},
		{37, BandVeryHot, DirectionHigher, "Very hot", 800},
		{52, BandHot, DirectionLower, "Hot!", 600},
		{62, BandWarm, DirectionLower, "Warm", 400},
		{22, BandWarm, DirectionHigher, "Warm", 400},
		{92, BandCold, DirectionLower, "Cold", 300},
		{93, BandVeryCold, DirectionLower, "Very cold", 200},
		{1, BandCold, DirectionHigher, "Cold", 300},
	}

	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.guess), func(t *testing.T) {
			h := newHarness(t, medium, 42)
			res := h.engine.SubmitGuess(strconv.Itoa(tc.guess))

			if res.Band != tc.band || res.Direction != tc.direction {
				t.Errorf("band/direction = %v/%v, want %v/%v", res.Band, res.Direction, tc.band, tc.direction)
			}
			if !strings.Contains(res.Hint, tc.phrase) {
				t.Errorf("Hint %q missing %q", res.Hint, tc.phrase)
			}
			turn := "Try higher!"
			if tc.direction == DirectionLower {
				turn = "Try lower!"
			}
			if !strings.Contains(res.Hint, turn) {
				t.Errorf("Hint %q missing %q", res.Hint, turn)
			}
			if !strings.Contains(res.Hint, "(7 guesses left)") {
				t.Errorf("Hint %q missing remaining count", res.Hint)
			}
			if cue := h.tones.last(); len(cue) != 1 || cue[0].Frequency != tc.pitch {
				t.Errorf("cue = %v, want %vHz", cue, tc.pitch)
			}
		})
	}
}

func TestScenarioMediumWin(t *testing.T) {
	h := newHarness(t, medium, 42)

	// Distance 48 sits inside the <=50 cold band
	res := h.engine.SubmitGuess("90")
	if res.Band != BandCold || res.Direction != DirectionLower {
		t.Errorf("90: band %v direction %v, want cold / lower", res.Band, res.Direction)
	}
	if !strings.Contains(res.Hint, "Try lower!") {
		t.Errorf("90: hint %q should point lower", res.Hint)
	}
	if len(res.Guesses) != 1 || res.Guesses[0] != 90 {
		t.Errorf("90: guesses = %v", res.Guesses)
	}

	res = h.engine.SubmitGuess("50")
	if res.Band != BandHot || res.Direction != DirectionLower {
		t.Errorf("50: band %v direction %v, want hot / lower", res.Band, res.Direction)
	}
	if len(res.Guesses) != 2 || res.Guesses[1] != 50 {
		t.Errorf("50: guesses = %v", res.Guesses)
	}

	res = h.engine.SubmitGuess("42")
	if res.Status != StatusWon {
		t.Errorf("42: status = %v, want won", res.Status)
	}

	snap := h.engine.Snapshot()
	wantDirs := []Direction{DirectionLower, DirectionLower, DirectionNone}
	for i, a := range snap.Attempts {
		if a.Direction != wantDirs[i] {
			t.Errorf("attempt %d direction = %v, want %v", i, a.Direction, wantDirs[i])
		}
	}
}

func TestScenarioMediumEightMisses(t *testing.T) {
	h := newHarness(t, medium, 42)
	misses := []int{1, 10, 20, 30, 60, 70, 80, 90}

	for i, g := range misses {
		res := h.engine.SubmitGuess(strconv.Itoa(g))
		if i < len(misses)-1 && res.Status != StatusPlaying {
			t.Fatalf("guess %d ended round early: %v", i+1, res.Status)
		}
		if len(res.Guesses) > medium.MaxGuesses {
			t.Fatalf("guesses exceeded budget: %v", res.Guesses)
		}
	}

	snap := h.engine.Snapshot()
	if snap.Status != StatusLost {
		t.Fatalf("Status = %v after 8 misses, want lost", snap.Status)
	}
	if !strings.Contains(snap.Hint, "42") {
		t.Errorf("Hint should reveal 42: %q", snap.Hint)
	}
	if snap.GuessesLeft != 0 {
		t.Errorf("GuessesLeft = %d, want 0", snap.GuessesLeft)
	}
}

func TestTickCountsDown(t *testing.T) {
	h := newHarness(t, medium, 42)
	for i := 0; i < 10; i++ {
		if h.engine.Tick() {
			t.Fatalf("tick %d expired early", i+1)
		}
	}
	if got := h.engine.Snapshot().RemainingSeconds; got != 80 {
		t.Errorf("RemainingSeconds = %d, want 80", got)
	}
}

func TestTickExpiresRound(t *testing.T) {
	h := newHarness(t, medium, 42)
	h.engine.SubmitGuess("10")

	expired := 0
	for i := 0; i < medium.TimeLimitSeconds; i++ {
		if h.engine.Tick() {
			expired++
		}
	}

	snap := h.engine.Snapshot()
	if expired != 1 {
		t.Errorf("expired reported %d times, want once", expired)
	}
	if snap.Status != StatusLost || snap.RemainingSeconds != 0 || !snap.TimedOut {
		t.Errorf("snapshot = status %v remaining %d timedOut %v", snap.Status, snap.RemainingSeconds, snap.TimedOut)
	}
	if !strings.Contains(snap.Hint, "Time's up") || !strings.Contains(snap.Hint, "42") {
		t.Errorf("timeout hint = %q", snap.Hint)
	}
	if len(snap.Attempts) != 1 {
		t.Errorf("timeout should not touch guesses, got %v", snap.Attempts)
	}
	if h.timer.running {
		t.Error("timer should be stopped on timeout")
	}
	if !slices.Equal(h.tones.last(), lossCue) {
		t.Errorf("timeout cue = %v, want the loss cue", h.tones.last())
	}
}

func TestTickAtOneSecond(t *testing.T) {
	p := config.Profile{Min: 1, Max: 10, MaxGuesses: 3, TimeLimitSeconds: 1}
	h := newHarness(t, p, 5)

	if !h.engine.Tick() {
		t.Fatal("tick at one second should expire")
	}
	snap := h.engine.Snapshot()
	if snap.RemainingSeconds != 0 || snap.Status != StatusLost {
		t.Errorf("remaining %d status %v, want 0 / lost", snap.RemainingSeconds, snap.Status)
	}
}

func TestTerminalStateIsIdempotent(t *testing.T) {
	for _, end := range []string{"win", "loss", "timeout"} {
		t.Run(end, func(t *testing.T) {
			p := config.Profile{Min: 1, Max: 100, MaxGuesses: 2, TimeLimitSeconds: 5}
			h := newHarness(t, p, 42)
			switch end {
			case "win":
				h.engine.SubmitGuess("42")
			case "loss":
				h.engine.SubmitGuess("1")
				h.engine.SubmitGuess("2")
			case "timeout":
				for i := 0; i < 5; i++ {
					h.engine.Tick()
				}
			}

			before := h.engine.Snapshot()
			cues := len(h.tones.cues)

			h.engine.Tick()
			res := h.engine.SubmitGuess("42")
			h.engine.SubmitGuess("3")
			h.engine.Tick()

			after := h.engine.Snapshot()
			if res.Rejection != RejectNotPlaying {
				t.Errorf("Rejection = %v, want not-playing", res.Rejection)
			}
			if after.Status != before.Status || after.Hint != before.Hint ||
				after.RemainingSeconds != before.RemainingSeconds || len(after.Attempts) != len(before.Attempts) {
				t.Errorf("terminal state changed: before %+v after %+v", before, after)
			}
			if len(h.tones.cues) != cues {
				t.Error("no cues should be emitted after the round ended")
			}
		})
	}
}

func TestStartNewGameReplacesRound(t *testing.T) {
	h := newHarness(t, medium, 42)
	h.engine.SubmitGuess("42")
	firstID := h.engine.Snapshot().RoundID

	easy := config.DefaultProfiles()[config.DifficultyEasy]
	h.engine.StartNewGame(easy)
	snap := h.engine.Snapshot()

	if snap.Status != StatusPlaying {
		t.Errorf("Status = %v, want playing", snap.Status)
	}
	if len(snap.Attempts) != 0 || snap.Elapsed != 0 || snap.TimedOut {
		t.Errorf("new round kept old state: %+v", snap)
	}
	if snap.RoundID == firstID {
		t.Error("new round should have a new ID")
	}
	if snap.Profile != easy || snap.RemainingSeconds != 120 {
		t.Errorf("profile %+v remaining %d, want easy", snap.Profile, snap.RemainingSeconds)
	}
	// Stop before every start, plus the stop on win
	if h.timer.starts != 2 || h.timer.stops != 3 || !h.timer.running {
		t.Errorf("timer starts %d stops %d running %v", h.timer.starts, h.timer.stops, h.timer.running)
	}
}

func TestStartNewGameMidRound(t *testing.T) {
	h := newHarness(t, medium, 42)
	h.engine.SubmitGuess("10")
	h.engine.Tick()

	h.engine.StartNewGame(medium)
	snap := h.engine.Snapshot()
	if len(snap.Attempts) != 0 || snap.RemainingSeconds != 90 {
		t.Errorf("mid-round restart kept state: %+v", snap)
	}
}

func TestResultGuessesIsACopy(t *testing.T) {
	h := newHarness(t, medium, 42)
	res := h.engine.SubmitGuess("10")
	res.Guesses[0] = 42

	if got := h.engine.Snapshot().Attempts[0].Value; got != 10 {
		t.Errorf("mutating Result.Guesses leaked into engine: %d", got)
	}
}

func TestGuessesNeverDuplicateOrOverflow(t *testing.T) {
	p := config.Profile{Min: 1, Max: 20, MaxGuesses: 5, TimeLimitSeconds: 60}
	e := New(core.RuntimeConfig{Seed: 3})
	inputs := []string{"3", "3", "7", "x", "7", "11", "0", "15", "21", "19", "2", "4"}

	for round := 0; round < 20; round++ {
		e.StartNewGame(p)
		for _, in := range inputs {
			res := e.SubmitGuess(in)
			if len(res.Guesses) > p.MaxGuesses {
				t.Fatalf("guesses %v exceed budget", res.Guesses)
			}
			seen := make(map[int]bool)
			for _, g := range res.Guesses {
				if seen[g] {
					t.Fatalf("duplicate %d in %v", g, res.Guesses)
				}
				seen[g] = true
			}
		}
	}
}

func TestStatusAndRejectionStrings(t *testing.T) {
	if StatusNotStarted.String() != "not-started" || StatusLost.String() != "lost" {
		t.Error("unexpected status names")
	}
	if !StatusWon.Terminal() || StatusPlaying.Terminal() {
		t.Error("Terminal() misclassifies statuses")
	}
	if RejectDuplicate.String() != "duplicate" {
		t.Error("unexpected rejection name")
	}
}

func TestStartNewGameWidestRange(t *testing.T) {
	p := config.Profile{Min: -config.RangeLimit, Max: config.RangeLimit, MaxGuesses: 5, TimeLimitSeconds: 45}
	if err := p.Validate(); err != nil {
		t.Fatalf("widest profile rejected: %v", err)
	}

	e := New(core.RuntimeConfig{Seed: 3})
	for i := 0; i < 50; i++ {
		e.StartNewGame(p)
		if target := e.round.target; !p.Contains(target) {
			t.Fatalf("target %d outside %d-%d", target, p.Min, p.Max)
		}
	}
}
