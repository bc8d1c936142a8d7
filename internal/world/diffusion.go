package world

import "math"

// targetState returns the state an agent of kind k pulls tiles toward. Staff
// pickups exert no influence.
func targetState(k Kind, p Params) (float64, bool) {
	switch k {
	case KindFire:
		return StateMin, true
	case KindIce:
		return StateMax, true
	case KindSpring:
		return p.GrassMid(), true
	default:
		return 0, false
	}
}

// Diffuse projects every free agent's influence onto the tiles around it and
// nudges their continuous state toward the agent's target.
//
// Influence falls off quadratically with tile distance inside the radius.
// Grass resists ordinary agents; Spring agents act with a boost. The applied
// fraction is clamped to one so a step never overshoots the target, which
// keeps every state inside [StateMin, StateMax].
func (w *World) Diffuse(dt float64) {
	p := w.cfg.Params
	radius := p.InfluenceRadius
	if dt <= 0 || radius <= 0 || p.InfluencePower <= 0 {
		return
	}
	r2 := radius * radius
	span := int(math.Ceil(radius))
	states := w.states.Cells()
	types := w.types.Cells()

	for i := range w.elementals {
		e := &w.elementals[i]
		if e.Status == StatusGrabbed {
			continue
		}
		target, ok := targetState(e.Kind, p)
		if !ok {
			continue
		}
		tx, ty := w.TileCoords(e.Pos)
		x0, y0, x1, y1, ok := w.states.Window(tx, ty, span)
		if !ok {
			continue
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				idx := y*w.w + x
				tile := types[idx]
				if tile == TileBlock {
					continue
				}
				d := math.Hypot(float64(x-tx), float64(y-ty))
				falloff := radius - d
				if falloff <= 0 {
					continue
				}
				influence := falloff * falloff / r2 * p.InfluencePower
				switch {
				case e.Kind == KindSpring:
					influence *= p.SpringBoost
				case tile == TileGrass:
					influence *= p.GrassResistance
				}

				current := states[idx]
				remaining := math.Abs(current - target)
				t := dt * influence / (remaining + stateEpsilon)
				if t > 1 {
					t = 1
				}
				states[idx] = current + (target-current)*t
			}
		}
	}
}
