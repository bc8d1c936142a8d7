package world

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
)

// TileTransition reports a tile whose classification changed during a step.
type TileTransition struct {
	X, Y int
	// Rect is the tile's footprint in world pixels.
	Rect image.Rectangle
	From TileType
	To   TileType
}

// HealthChange reports a vitality tick that altered the player's health.
type HealthChange struct {
	Old, New float64
	// At is the player's centre when the tick fired.
	At mgl64.Vec2
}

// Healed reports whether the change increased health.
func (h HealthChange) Healed() bool { return h.New > h.Old }

// Sink receives one-way notifications from the simulation. Implementations
// must not call back into the World.
type Sink interface {
	TileChanged(TileTransition)
	HealthChanged(HealthChange)
	VictoryReached()
	Grabbed(Elemental)
	Released(Elemental)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) TileChanged(TileTransition) {}
func (NopSink) HealthChanged(HealthChange) {}
func (NopSink) VictoryReached()            {}
func (NopSink) Grabbed(Elemental)          {}
func (NopSink) Released(Elemental)         {}

// Sinks fans every event out to each member in order.
type Sinks []Sink

func (s Sinks) TileChanged(ev TileTransition) {
	for _, sink := range s {
		sink.TileChanged(ev)
	}
}

func (s Sinks) HealthChanged(ev HealthChange) {
	for _, sink := range s {
		sink.HealthChanged(ev)
	}
}

func (s Sinks) VictoryReached() {
	for _, sink := range s {
		sink.VictoryReached()
	}
}

func (s Sinks) Grabbed(e Elemental) {
	for _, sink := range s {
		sink.Grabbed(e)
	}
}

func (s Sinks) Released(e Elemental) {
	for _, sink := range s {
		sink.Released(e)
	}
}
