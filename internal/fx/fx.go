// Package fx keeps the transient visual feedback for world events: fading
// rectangles in screen or world space and short-lived particles. It holds no
// drawing code; front ends read Fades and Particles each frame.
package fx

import (
	"image"
	"image/color"
	"math"

	"spring-guardian/internal/world"
	prng "spring-guardian/pkg/core"

	"github.com/go-gl/mathgl/mgl64"
)

// Layer selects the coordinate space of a fade.
type Layer uint8

const (
	// LayerWorld fades are positioned in world pixels.
	LayerWorld Layer = iota
	// LayerScreen fades are fixed to the screen. An empty Rect covers it all.
	LayerScreen
)

// Fade is a coloured rectangle whose opacity ramps over Duration.
type Fade struct {
	Layer    Layer
	Rect     image.Rectangle
	Color    color.RGBA
	Duration float64
	Elapsed  float64
	// In ramps from transparent to Color; otherwise from Color to transparent.
	In bool
	// Hold keeps a finished fade at its final opacity until Reset.
	Hold bool
}

// Progress returns the fraction of Duration elapsed, clamped to [0,1].
func (f Fade) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return math.Min(1, f.Elapsed/f.Duration)
}

// Alpha returns the current opacity in [0,1], scaled by Color.A.
func (f Fade) Alpha() float64 {
	p := f.Progress()
	if !f.In {
		p = 1 - p
	}
	return p * float64(f.Color.A) / 255
}

// Done reports whether the fade has run its course and can be dropped.
func (f Fade) Done() bool { return !f.Hold && f.Elapsed >= f.Duration }

// Particle is a shrinking dot that drifts at constant velocity.
type Particle struct {
	Pos, Vel mgl64.Vec2
	Radius   float64
	Life     float64
	Color    color.RGBA
}

// Particle shrink rate in pixels per second.
const shrinkRate = 5

// Timings and counts for the event reactions.
const (
	TileFadeTime     = 0.5
	DamageFlashTime  = 0.3
	VictoryFadeTime  = 2.5
	MaxParticles     = 1024
	tileBurst        = 3
	healBurst        = 6
	grabBurst        = 12
	releaseBurst     = 8
	particleSpeed    = 60
	particleLife     = 0.8
	particleRadius   = 4
	damageFlashAlpha = 110
)

var (
	damageColor  = color.RGBA{R: 230, G: 41, B: 55, A: damageFlashAlpha}
	healColor    = color.RGBA{R: 120, G: 255, B: 160, A: 255}
	victoryColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Manager collects fades and particles. It implements world.Sink.
type Manager struct {
	fades     []Fade
	particles []Particle
	rng       *prng.RNG
}

// NewManager returns an empty manager seeded for particle spread.
func NewManager(seed int64) *Manager {
	return &Manager{rng: prng.NewRNG(seed)}
}

// Reset drops every active effect.
func (m *Manager) Reset() {
	m.fades = m.fades[:0]
	m.particles = m.particles[:0]
}

// AddFade queues f.
func (m *Manager) AddFade(f Fade) { m.fades = append(m.fades, f) }

// Burst emits n particles at pos flying outward in random directions.
func (m *Manager) Burst(pos mgl64.Vec2, n int, c color.RGBA) {
	for i := 0; i < n && len(m.particles) < MaxParticles; i++ {
		angle := m.rng.Range(0, 2*math.Pi)
		speed := particleSpeed * m.rng.Range(0.5, 1)
		m.particles = append(m.particles, Particle{
			Pos:    pos,
			Vel:    mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(speed),
			Radius: particleRadius * m.rng.Range(0.6, 1),
			Life:   particleLife * m.rng.Range(0.7, 1),
			Color:  c,
		})
	}
}

// Update ages every effect by dt seconds and drops the finished ones.
func (m *Manager) Update(dt float64) {
	fades := m.fades[:0]
	for _, f := range m.fades {
		f.Elapsed += dt
		if f.Done() {
			continue
		}
		fades = append(fades, f)
	}
	m.fades = fades

	particles := m.particles[:0]
	for _, p := range m.particles {
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Life -= dt
		p.Radius -= shrinkRate * dt
		if p.Life <= 0 || p.Radius <= 0 {
			continue
		}
		particles = append(particles, p)
	}
	m.particles = particles
}

// Fades returns the active fades on layer in insertion order.
func (m *Manager) Fades(layer Layer) []Fade {
	var out []Fade
	for _, f := range m.fades {
		if f.Layer == layer {
			out = append(out, f)
		}
	}
	return out
}

// Particles returns the live particles. The slice is reused by Update.
func (m *Manager) Particles() []Particle { return m.particles }

// TileChanged flashes the tile in its new colour.
func (m *Manager) TileChanged(ev world.TileTransition) {
	c := world.TileColor(ev.To)
	m.AddFade(Fade{Layer: LayerWorld, Rect: ev.Rect, Color: c, Duration: TileFadeTime})
	centre := ev.Rect.Min.Add(ev.Rect.Max).Div(2)
	m.Burst(mgl64.Vec2{float64(centre.X), float64(centre.Y)}, tileBurst, c)
}

// HealthChanged flashes the screen on damage and sparkles on healing.
func (m *Manager) HealthChanged(ev world.HealthChange) {
	if ev.Healed() {
		m.Burst(ev.At, healBurst, healColor)
		return
	}
	m.AddFade(Fade{Layer: LayerScreen, Color: damageColor, Duration: DamageFlashTime})
}

// VictoryReached starts the full-screen conclusion fade.
func (m *Manager) VictoryReached() {
	m.AddFade(Fade{Layer: LayerScreen, Color: victoryColor, Duration: VictoryFadeTime, In: true, Hold: true})
}

func (m *Manager) Grabbed(e world.Elemental) {
	m.Burst(e.Pos, grabBurst, world.KindColor(e.Kind))
}

func (m *Manager) Released(e world.Elemental) {
	m.Burst(e.Pos, releaseBurst, world.KindColor(e.Kind))
}
