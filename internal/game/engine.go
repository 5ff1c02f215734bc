package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
	"github.com/vovakirdan/wasteland-flyer/internal/core"
)

// BestScoreStore persists the single best-score value.
type BestScoreStore interface {
	BestScore() (int, error)
	SetBestScore(score int) error
}

// RoundSummary describes a finished round.
type RoundSummary struct {
	Round     int
	Score     int
	Ticks     int
	Milestone bool
	NewBest   bool
}

// StepResult is returned by Engine.Tick.
type StepResult struct {
	State     State
	Score     int
	Passed    []ObstacleID  // Pass events emitted on this tick
	Milestone bool          // Milestone notification fired on this tick
	Over      *RoundSummary // Set on the tick the round ended
}

// Engine drives the Menu -> Playing -> GameOver state machine.
// It is not safe for concurrent use; front ends call it from one loop.
type Engine struct {
	cfg    config.FlyerConfig
	rng    RandSource
	store  BestScoreStore
	logger *log.Logger

	exec           func(func())
	onMilestone    func(score int)
	onPersistError func(error)

	phase   phase
	best    int
	round   int
	pending bool // Impulse requested since the last tick
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the gap placement source. Defaults to a time-seeded generator.
func WithRand(r RandSource) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed seeds the default generator for reproducible rounds.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithStore attaches best-score persistence. The best score is read once in New.
func WithStore(s BestScoreStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithExecutor sets how best-score writes are dispatched.
// The default runs each write on its own goroutine.
func WithExecutor(exec func(func())) Option {
	return func(e *Engine) { e.exec = exec }
}

// OnMilestone registers the milestone notification. It fires at most once per round.
func OnMilestone(fn func(score int)) Option {
	return func(e *Engine) { e.onMilestone = fn }
}

// OnPersistError registers a callback for failed best-score writes.
// It runs on the executor, not on the tick path.
func OnPersistError(fn func(error)) Option {
	return func(e *Engine) { e.onPersistError = fn }
}

// New creates an engine in the Menu state.
func New(cfg config.FlyerConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		phase:  menuPhase{},
		logger: log.New(io.Discard),
		exec:   func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if e.store != nil {
		best, err := e.store.BestScore()
		if err != nil {
			e.logger.Warn("could not read best score", "error", err)
		} else {
			e.best = best
		}
	}

	return e
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.phase.state()
}

// Best returns the best score known to the engine.
func (e *Engine) Best() int {
	return e.best
}

// Round returns the number of rounds started so far. It changes on every
// Start and Restart, which lets front ends drop ticks scheduled for an old round.
func (e *Engine) Round() int {
	return e.round
}

// Config returns the constants the engine runs with.
func (e *Engine) Config() config.FlyerConfig {
	return e.cfg
}

// Start begins a round from the menu. Returns false in any other state.
func (e *Engine) Start() bool {
	if _, ok := e.phase.(menuPhase); !ok {
		return false
	}
	e.beginRound()
	return true
}

// Restart begins a new round from the game over screen. Returns false in any other state.
func (e *Engine) Restart() bool {
	if _, ok := e.phase.(gameOverPhase); !ok {
		return false
	}
	e.beginRound()
	return true
}

// Return goes back to the menu and discards the World. From Playing this
// abandons the round without touching the best score.
func (e *Engine) Return() bool {
	if _, ok := e.phase.(menuPhase); ok {
		return false
	}
	if _, ok := e.phase.(playingPhase); ok {
		e.logger.Debug("round abandoned", "round", e.round)
	}
	e.phase = menuPhase{}
	e.pending = false
	return true
}

func (e *Engine) beginRound() {
	e.round++
	e.pending = false
	e.phase = playingPhase{world: NewWorld(e.cfg)}
	e.logger.Debug("round started", "round", e.round, "best", e.best)
}

// RequestImpulse buffers a flap for the next tick. Several requests between
// two ticks collapse into one. Ignored unless Playing.
func (e *Engine) RequestImpulse(src core.InputSource) bool {
	if _, ok := e.phase.(playingPhase); !ok {
		return false
	}
	e.pending = true
	return true
}

// Tick advances the simulation by one step while Playing.
// In any other state it changes nothing.
func (e *Engine) Tick() StepResult {
	p, ok := e.phase.(playingPhase)
	if !ok {
		return StepResult{State: e.phase.state(), Score: e.Snapshot().Score}
	}

	impulse := e.pending
	e.pending = false

	w, out := Step(p.world, impulse, e.cfg, e.rng)
	res := StepResult{
		State:     StatePlaying,
		Score:     w.Score,
		Passed:    out.Passed,
		Milestone: out.Milestone,
	}

	if out.Milestone {
		e.logger.Info("milestone reached", "round", e.round, "score", w.Score)
		if e.onMilestone != nil {
			e.onMilestone(w.Score)
		}
	}

	if out.Verdict == Terminal {
		summary := e.finish(w)
		res.State = StateGameOver
		res.Over = &summary
		return res
	}

	e.phase = playingPhase{world: w}
	return res
}

// finish freezes the world and records a new best score if there is one.
func (e *Engine) finish(w World) RoundSummary {
	newBest := w.Score > e.best
	if newBest {
		e.best = w.Score
		e.persist(w.Score)
	}
	e.phase = gameOverPhase{world: w, newBest: newBest}

	e.logger.Debug("round over", "round", e.round, "score", w.Score, "ticks", w.Tick, "best", e.best)

	return RoundSummary{
		Round:     e.round,
		Score:     w.Score,
		Ticks:     w.Tick,
		Milestone: w.MilestoneReached,
		NewBest:   newBest,
	}
}

func (e *Engine) persist(score int) {
	if e.store == nil {
		return
	}
	store, logger, onErr := e.store, e.logger, e.onPersistError
	e.exec(func() {
		if err := store.SetBestScore(score); err != nil {
			logger.Warn("could not save best score", "score", score, "error", err)
			if onErr != nil {
				onErr(err)
			}
		}
	})
}

// Snapshot returns a copy of the current visual state.
func (e *Engine) Snapshot() Snapshot {
	var snap Snapshot
	switch p := e.phase.(type) {
	case playingPhase:
		snap = snapshotOf(p.world)
	case gameOverPhase:
		snap = snapshotOf(p.world)
		snap.NewBest = p.newBest
	default:
		snap = snapshotOf(NewWorld(e.cfg))
	}
	snap.State = e.phase.state()
	snap.Round = e.round
	snap.Best = e.best
	return snap
}
