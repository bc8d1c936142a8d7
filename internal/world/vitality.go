package world

// TickVitality advances the player's health clock. Each time the interval
// elapses the tile under the player's centre is sampled: grass heals, block is
// neutral and anything else hurts. Health reaching zero is terminal.
func (w *World) TickVitality(dt float64) {
	p := &w.player
	h := &p.Health
	if h.Dead || p.Status == PlayerIdle || p.Status == PlayerDead {
		return
	}
	h.UntilNextTick -= dt
	if h.UntilNextTick > 0 {
		return
	}
	h.UntilNextTick = h.TickInterval

	centre := w.PlayerCenter()
	old := h.Current
	switch w.TileAt(centre) {
	case TileGrass:
		h.Current = min(h.Max, h.Current+h.DamagePerTick)
	case TileBlock:
	default:
		h.Current = max(0, h.Current-h.DamagePerTick)
	}
	if h.Current <= 0 {
		h.Dead = true
		p.Status = PlayerDead
	}
	if h.Current != old {
		w.sink.HealthChanged(HealthChange{Old: old, New: h.Current, At: centre})
	}
}
