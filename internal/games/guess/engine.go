// Package guess implements the number guessing rules as a pure state machine.
//
// An Engine drives one round at a time: StartNewGame draws a target and
// enters playing, SubmitGuess validates and evaluates input, and Tick counts
// the time budget down. The engine never blocks and never returns errors for
// game outcomes; every outcome is a status plus hint text.
//
// The engine is not safe for concurrent use. Callers serialize all calls
// through one goroutine.
package guess

import (
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/core"
)

// Status is the lifecycle state of a round.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Rejection explains why a submission was not counted as a guess.
type Rejection int

const (
	RejectNone Rejection = iota
	RejectNotPlaying
	RejectOutOfRange
	RejectDuplicate
)

// String returns the rejection name.
func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectNotPlaying:
		return "not-playing"
	case RejectOutOfRange:
		return "out-of-range"
	case RejectDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Result is the outcome of one SubmitGuess call.
type Result struct {
	Status    Status
	Hint      string
	Guesses   []int
	Accepted  bool
	Rejection Rejection
	Band      Band      // set when an accepted guess neither wins nor ends the round
	Direction Direction // set for every accepted guess
}

// Attempt is an accepted guess and where the target lies relative to it.
type Attempt struct {
	Value     int
	Direction Direction
}

// Snapshot is a read-only view of the current round for presentation.
type Snapshot struct {
	RoundID          string
	Status           Status
	Hint             string
	Profile          config.Profile
	Attempts         []Attempt
	GuessesLeft      int
	RemainingSeconds int
	Elapsed          time.Duration // set once the round is won
	Target           int           // revealed only when the round is terminal
	TimedOut         bool
}

// round is the mutable state of one play-through. It is replaced as a whole
// by StartNewGame.
type round struct {
	id        string
	profile   config.Profile
	target    int
	guesses   []int
	status    Status
	remaining int
	startedAt time.Time
	elapsed   time.Duration
	hint      string
	timedOut  bool
}

// Engine runs the guessing game.
type Engine struct {
	rng   *rand.Rand
	clock core.Clock
	tones ToneEmitter
	timer Timer
	round round
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock sets the time source used for elapsed-time hints.
func WithClock(c core.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithTones sets the audio cue receiver.
func WithTones(t ToneEmitter) Option {
	return func(e *Engine) { e.tones = t }
}

// WithTimer sets the tick source controlled by the engine.
func WithTimer(t Timer) Option {
	return func(e *Engine) { e.timer = t }
}

// New creates an engine in the not-started state.
// The target RNG is seeded from cfg.Seed (time based when zero).
func New(cfg core.RuntimeConfig, opts ...Option) *Engine {
	e := &Engine{
		rng:   rand.New(rand.NewSource(cfg.ResolvedSeed())),
		clock: core.SystemClock{},
		tones: nopEmitter{},
		timer: nopTimer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartNewGame begins a fresh round with profile p and returns the opening
// hint. p must satisfy config.Profile.Validate.
func (e *Engine) StartNewGame(p config.Profile) string {
	// Cancel ticks belonging to the superseded round before anything else
	e.timer.Stop()

	e.round = round{
		id:        uuid.NewString(),
		profile:   p,
		target:    e.rng.Intn(p.Max-p.Min+1) + p.Min,
		guesses:   make([]int, 0, p.MaxGuesses),
		status:    StatusPlaying,
		remaining: p.TimeLimitSeconds,
		startedAt: e.clock.Now(),
		hint:      startHint(p),
	}

	e.timer.Start()
	return e.round.hint
}

// SubmitGuess validates raw and, if it is a new in-range integer, records it
// and evaluates the round.
func (e *Engine) SubmitGuess(raw string) Result {
	r := &e.round
	if r.status != StatusPlaying {
		return e.result(Result{Rejection: RejectNotPlaying})
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !r.profile.Contains(n) {
		r.hint = outOfRangeHint(r.profile)
		e.tones.Emit(rejectCue...)
		return e.result(Result{Rejection: RejectOutOfRange})
	}

	if slices.Contains(r.guesses, n) {
		r.hint = duplicateHint
		e.tones.Emit(rejectCue...)
		return e.result(Result{Rejection: RejectDuplicate})
	}

	r.guesses = append(r.guesses, n)
	res := Result{Accepted: true, Direction: DirectionOf(n, r.target)}

	switch {
	case n == r.target:
		r.status = StatusWon
		r.elapsed = e.clock.Now().Sub(r.startedAt)
		r.hint = winHint(r.target, len(r.guesses), r.elapsed)
		e.timer.Stop()
		e.tones.Emit(victoryCue...)

	case len(r.guesses) >= r.profile.MaxGuesses:
		r.status = StatusLost
		r.hint = lossHint(r.target)
		e.timer.Stop()
		e.tones.Emit(lossCue...)

	default:
		res.Band = Classify(n, r.target)
		r.hint = proximityHint(res.Band, res.Direction, r.profile.MaxGuesses-len(r.guesses))
		e.tones.Emit(res.Band.Tone())
	}

	return e.result(res)
}

// Tick consumes one second of the time budget. It reports whether this tick
// expired the round. Ticks outside playing are ignored.
func (e *Engine) Tick() bool {
	r := &e.round
	if r.status != StatusPlaying {
		return false
	}

	r.remaining--
	if r.remaining > 0 {
		return false
	}

	r.remaining = 0
	r.status = StatusLost
	r.timedOut = true
	r.hint = timeoutHint(r.target)
	e.timer.Stop()
	e.tones.Emit(lossCue...)
	return true
}

// Status returns the current round status.
func (e *Engine) Status() Status {
	return e.round.status
}

// Snapshot returns a copy of the presentable round state.
func (e *Engine) Snapshot() Snapshot {
	r := e.round
	s := Snapshot{
		RoundID:          r.id,
		Status:           r.status,
		Hint:             r.hint,
		Profile:          r.profile,
		Attempts:         make([]Attempt, len(r.guesses)),
		GuessesLeft:      r.profile.MaxGuesses - len(r.guesses),
		RemainingSeconds: r.remaining,
		Elapsed:          r.elapsed,
		TimedOut:         r.timedOut,
	}
	for i, g := range r.guesses {
		s.Attempts[i] = Attempt{Value: g, Direction: DirectionOf(g, r.target)}
	}
	if r.status.Terminal() {
		s.Target = r.target
	}
	return s
}

func (e *Engine) result(res Result) Result {
	res.Status = e.round.status
	res.Hint = e.round.hint
	res.Guesses = slices.Clone(e.round.guesses)
	return res
}
