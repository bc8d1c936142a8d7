package world

// Update advances the world by dt seconds. Stages run in a fixed order and
// each observes the mutations of the ones before it: player movement and
// interaction, diffusion, wandering and homing, classification, then the
// victory gate. Once victory has latched only the conclusion clock advances.
func (w *World) Update(dt float64, in Input) {
	if w.victory.latched {
		w.victory.elapsed += dt
		return
	}
	w.updatePlayer(dt, in)
	w.Diffuse(dt)
	w.MoveElementals(dt)
	w.Classify()
	w.CheckVictory()
}

func (w *World) updatePlayer(dt float64, in Input) {
	if w.player.Health.Dead {
		return
	}
	dir := in.Move
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
		if w.player.Status == PlayerIdle {
			w.player.Status = PlayerMoving
		}
		w.movePlayer(dir.Mul(w.player.Speed * dt))
	}
	if in.Interact {
		w.TryInteract()
	}
	w.aimHoming(in)
	w.TickVitality(dt)
}
