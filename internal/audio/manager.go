// Package audio turns world events into synthesized sound cues and an
// ambient pad whose volume follows spring dominance.
package audio

import (
	"log/slog"
	"time"

	"spring-guardian/internal/world"
	prng "spring-guardian/pkg/core"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	// SampleRate is the rate every cue is synthesized at.
	SampleRate = beep.SampleRate(44100)
	// Cooldown is the minimum gap between two plays of the same cue.
	Cooldown = 50 * time.Millisecond
	// PitchVariance is the maximum relative pitch offset applied per play.
	PitchVariance = 0.08
	// AmbienceScale maps spring dominance to ambient pad gain.
	AmbienceScale = 0.4
)

// Output mixes streamers onto a device.
type Output interface {
	// Play adds s to the mix.
	Play(s beep.Streamer)
	// Do runs fn while the device is not pulling samples.
	Do(fn func())
}

// NopOutput discards everything.
type NopOutput struct{}

func (NopOutput) Play(beep.Streamer) {}
func (NopOutput) Do(fn func())       { fn() }

// Manager plays cues for world events. It is driven from the game loop and
// is not safe for concurrent use.
type Manager struct {
	out      Output
	log      *slog.Logger
	rng      *prng.RNG
	now      func() time.Time
	last     [cueCount]time.Time
	muted    bool
	ambience *effects.Volume
	level    float64
}

// NewManager builds a manager that writes to out. A nil out plays nothing.
func NewManager(out Output, seed int64, log *slog.Logger) *Manager {
	if out == nil {
		out = NopOutput{}
	}
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{
		out: out,
		log: log,
		rng: prng.NewRNG(seed),
		now: time.Now,
	}
	m.ambience = newVolume(&drone{sr: SampleRate}, 0)
	out.Play(m.ambience)
	return m
}

// SetMuted silences new cues and the ambient pad.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	m.SetAmbience(m.level)
}

// Muted reports whether cues are silenced.
func (m *Manager) Muted() bool { return m.muted }

// SetAmbience sets the ambient pad from a spring dominance ratio.
func (m *Manager) SetAmbience(dominance float64) {
	m.level = dominance
	gain := dominance * AmbienceScale
	if m.muted {
		gain = 0
	}
	m.out.Do(func() { setGain(m.ambience, gain) })
}

// Ambience returns the current ambient pad gain.
func (m *Manager) Ambience() float64 {
	if m.muted {
		return 0
	}
	return m.level * AmbienceScale
}

// Play triggers c unless it is muted or still cooling down. It reports
// whether a sound was queued.
func (m *Manager) Play(c Cue) bool {
	if c >= cueCount || m.muted {
		return false
	}
	now := m.now()
	if last := m.last[c]; !last.IsZero() && now.Sub(last) < Cooldown {
		return false
	}
	pitch := 1 + m.rng.Jitter(PitchVariance)
	s, err := synth(SampleRate, recipes[c], pitch)
	if err != nil {
		m.log.Warn("cue synthesis failed", "cue", c, "err", err)
		return false
	}
	m.last[c] = now
	m.out.Play(s)
	return true
}

// TileChanged plays the cue for the tile's new climate.
func (m *Manager) TileChanged(ev world.TileTransition) {
	switch ev.To {
	case world.TileDry:
		m.Play(CueDry)
	case world.TileSnow:
		m.Play(CueFreeze)
	case world.TileGrass:
		m.Play(CueGrass)
	}
}

// HealthChanged plays heal or hit.
func (m *Manager) HealthChanged(ev world.HealthChange) {
	if ev.Healed() {
		m.Play(CueHeal)
		return
	}
	m.Play(CueHit)
}

func (m *Manager) VictoryReached()          { m.Play(CueVictory) }
func (m *Manager) Grabbed(world.Elemental)  { m.Play(CueGrab) }
func (m *Manager) Released(world.Elemental) { m.Play(CueRelease) }
