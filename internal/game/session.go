// Package game drives level progression around the world simulation.
package game

import (
	"fmt"
	"io/fs"
	"log/slog"

	"spring-guardian/internal/level"
	"spring-guardian/internal/world"
)

// State is the session phase.
type State uint8

const (
	StateStarting State = iota
	StatePlaying
	StateVictory
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StateVictory:
		return "victory"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ConclusionTime is how long the victory sequence plays before the next
// level loads on its own.
const ConclusionTime = 4.0

// Input is one frame of session input. Confirm advances the title and end
// screens; Restart reloads the current level.
type Input struct {
	world.Input
	Confirm bool
	Restart bool
}

// Options configure a Session.
type Options struct {
	// Base is the configuration level tuning files override.
	Base world.Config
	// Sink receives world events for every level the session loads.
	Sink world.Sink
	// OnLoad runs after each level load, before the first update.
	OnLoad func(*level.Level, *world.World)
	Logger *slog.Logger
}

// Session owns the current level and its world.
type Session struct {
	fsys   fs.FS
	opts   Options
	log    *slog.Logger
	levels []int

	index int
	level *level.Level
	world *world.World
	state State
	// elapsed is time spent in the current state.
	elapsed float64
}

// NewSession discovers the levels in fsys and loads the first one.
func NewSession(fsys fs.FS, opts Options) (*Session, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	levels, err := level.Discover(fsys)
	if err != nil {
		return nil, fmt.Errorf("discover levels: %w", err)
	}
	s := &Session{fsys: fsys, opts: opts, log: log, levels: levels}
	if err := s.load(0); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Elapsed returns the time spent in the current phase.
func (s *Session) Elapsed() float64 { return s.elapsed }

// World returns the live simulation.
func (s *Session) World() *world.World { return s.world }

// Level returns the loaded level.
func (s *Session) Level() *level.Level { return s.level }

// Levels returns the discovered level numbers.
func (s *Session) Levels() []int { return s.levels }

// Restart reloads the current level from disk.
func (s *Session) Restart() error { return s.load(s.index) }

// Jump loads the level at position index of Levels.
func (s *Session) Jump(index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("level index %d: %w", index, level.ErrLevelNotFound)
	}
	return s.load(index)
}

// Update advances the session by dt seconds.
func (s *Session) Update(dt float64, in Input) error {
	s.elapsed += dt
	if in.Restart {
		return s.Restart()
	}
	switch s.state {
	case StateStarting:
		if in.Confirm {
			s.setState(StatePlaying)
		}
	case StatePlaying:
		s.world.Update(dt, in.Input)
		switch {
		case s.world.Victorious():
			s.setState(StateVictory)
		case s.world.Player().Health.Dead:
			s.setState(StateGameOver)
		}
	case StateVictory:
		s.world.Update(dt, in.Input)
		if in.Confirm || s.world.TimeInVictory() >= ConclusionTime {
			return s.load((s.index + 1) % len(s.levels))
		}
	case StateGameOver:
		if in.Confirm {
			return s.Restart()
		}
	}
	return nil
}

func (s *Session) load(index int) error {
	n := s.levels[index]
	lvl, err := level.Load(s.fsys, n, s.opts.Base, s.log)
	if err != nil {
		return err
	}
	s.index = index
	s.level = lvl
	s.world = lvl.World(s.opts.Sink)
	s.log.Info("level loaded", "level", n, "title", lvl.Title, "size", fmt.Sprintf("%dx%d", s.world.Size().W, s.world.Size().H))
	s.setState(StateStarting)
	if s.opts.OnLoad != nil {
		s.opts.OnLoad(lvl, s.world)
	}
	return nil
}

func (s *Session) setState(next State) {
	if next != s.state {
		s.log.Debug("session state", "from", s.state, "to", next)
	}
	s.state = next
	s.elapsed = 0
}
