package world

import "github.com/go-gl/mathgl/mgl64"

// MoveElementals advances every agent by one step. Grabbed agents ride on the
// player, agents whose staff is held home on the shared target, and the rest
// wander toward their own target.
func (w *World) MoveElementals(dt float64) {
	centre := w.PlayerCenter()
	for i := range w.elementals {
		e := &w.elementals[i]
		switch {
		case e.Status == StatusGrabbed:
			e.Pos = centre
		case w.homing.activeFor(e.Kind):
			e.Pos = stepToward(e.Pos, w.homing.target, e.Speed*dt)
		default:
			w.wander(e, dt)
		}
	}
}

// wander moves e toward its target. On arrival a new target is drawn from the
// window of half-width MovementRadius tiles, and every ArrivalsPerGrowth
// arrivals the window grows by one tile.
func (w *World) wander(e *Elemental, dt float64) {
	step := e.Speed * dt
	if step <= 0 {
		return
	}
	remaining := e.Target.Sub(e.Pos).Len()
	if remaining >= step {
		e.Pos = stepToward(e.Pos, e.Target, step)
		return
	}
	e.Pos = e.Target
	e.Target = w.wanderTarget(e)
	e.arrivalsUntilGrowth--
	if e.arrivalsUntilGrowth <= 0 {
		e.MovementRadius++
		e.arrivalsUntilGrowth = w.arrivalsPerGrowth()
	}
}

func (w *World) wanderTarget(e *Elemental) mgl64.Vec2 {
	reach := float64(e.MovementRadius) * w.tileSize
	bounds := w.Bounds()
	half := w.tileSize / 2
	x := w.rng.Range(e.Pos.X()-reach, e.Pos.X()+reach)
	y := w.rng.Range(e.Pos.Y()-reach, e.Pos.Y()+reach)
	return mgl64.Vec2{
		clampFloat(x, half, bounds.X()-half),
		clampFloat(y, half, bounds.Y()-half),
	}
}

// resetWander returns e to the initial wander state at its current position.
func (w *World) resetWander(e *Elemental) {
	e.MovementRadius = 1
	e.arrivalsUntilGrowth = w.arrivalsPerGrowth()
	e.Target = e.Pos
}

// stepToward moves from toward to by at most maxStep without overshooting.
func stepToward(from, to mgl64.Vec2, maxStep float64) mgl64.Vec2 {
	if maxStep <= 0 {
		return from
	}
	delta := to.Sub(from)
	dist := delta.Len()
	if dist <= maxStep {
		return to
	}
	return from.Add(delta.Mul(maxStep / dist))
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
