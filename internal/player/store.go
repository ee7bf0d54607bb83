package player

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/neonx/internal/shared"
)

// StoreOpts configures a [Store].
type StoreOpts struct {
	Logger       *log.Logger
	TickInterval time.Duration
}

// Store guards a [State] for presentations that touch it from more than one goroutine.
//
// Every change goes through [Store.Dispatch]. The store owns a [Clock] that runs only while the
// state is playing.
type Store struct {
	mu     sync.Mutex
	id     string
	state  State
	clock  *Clock
	logger *log.Logger
}

// NewStore wraps initial in a store with a fresh instance ID.
func NewStore(initial State, opts StoreOpts) *Store {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	s := &Store{
		id:    shared.GenerateID(),
		state: initial,
	}
	s.logger = shared.WithLogger(opts.Logger, "player", s.id)
	s.clock = NewClock(opts.TickInterval, s.tick)

	if initial.Playing {
		s.clock.Start()
	}
	return s
}

// ID identifies this player instance.
func (s *Store) ID() string { return s.id }

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies c and returns the resulting state.
func (s *Store) Dispatch(c Command) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(c)
}

// tick is the clock callback. Ticks from a stopped or restarted clock are dropped.
func (s *Store) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.clock.Current(gen) {
		s.logger.Debug("stale tick dropped", "gen", gen)
		return
	}
	s.apply(Tick())
}

func (s *Store) apply(c Command) State {
	prev := s.state
	s.state = prev.Apply(c)

	if c.Kind != CmdTick {
		s.logger.Debug("command applied", "command", c.Kind, "playing", s.state.Playing, "elapsed", s.state.Elapsed)
	} else if prev.Playing && !s.state.Playing && prev.Track != nil {
		s.logger.Info("track finished", "track", prev.Track.Title)
	}

	switch {
	case !s.state.Playing:
		s.clock.Stop()
	case !prev.Playing || c.Kind == CmdSelectTrack:
		s.clock.Restart()
	}

	return s.state
}

// Ticking reports whether the store's clock is running.
func (s *Store) Ticking() bool { return s.clock.Running() }

// Close stops the clock. The store stays readable.
func (s *Store) Close() {
	s.clock.Stop()
}
