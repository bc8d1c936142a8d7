package world

// classifyState maps a continuous state onto its band.
func classifyState(state float64, p Params) TileType {
	switch {
	case state < p.DryUpper:
		return TileDry
	case state < p.GrassUpper:
		return TileGrass
	default:
		return TileSnow
	}
}

// Classify reclassifies every tile from its continuous state, refreshes draw
// colours and recomputes dominance. A transition event is emitted for each
// tile whose type changed.
func (w *World) Classify() { w.classify(true) }

// classify is shared by the silent load-time pass and the per-step pass.
// Block tiles count as won. Unknown ground cells keep their error colour
// until the pass that first gives them a band.
func (w *World) classify(emit bool) {
	p := w.cfg.Params
	states := w.states.Cells()
	types := w.types.Cells()
	won := 0
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			prev := types[idx]
			if prev == TileBlock {
				won++
				continue
			}
			next := classifyState(states[idx], p)
			if next == TileGrass {
				won++
			}
			if prev != TileNone {
				w.colors[idx] = tileColor(states[idx], next, p)
			}
			if next == prev {
				continue
			}
			types[idx] = next
			if emit {
				w.sink.TileChanged(TileTransition{X: x, Y: y, Rect: w.TileRect(x, y), From: prev, To: next})
			}
		}
	}
	w.grassTiles = won
	total := w.w * w.h
	if total == 0 {
		w.dominance = 0
		return
	}
	w.dominance = float64(won) / float64(total)
}
