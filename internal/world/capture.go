package world

// TryInteract runs the capture protocol for one interact input edge. A free
// player grabs the nearest moving agent strictly inside the capture radius; a
// grabbing player releases the agent it carries. It reports whether any state
// changed.
func (w *World) TryInteract() bool {
	switch w.player.Status {
	case PlayerDead:
		return false
	case PlayerGrabbing:
		return w.release()
	default:
		return w.grab()
	}
}

func (w *World) grab() bool {
	centre := w.PlayerCenter()
	best := -1
	bestDist := w.cfg.Params.CaptureRadius
	for i := range w.elementals {
		e := &w.elementals[i]
		if e.Status != StatusMoving {
			continue
		}
		if d := e.Pos.Sub(centre).Len(); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return false
	}

	e := &w.elementals[best]
	e.Status = StatusGrabbed
	e.Pos = centre
	w.player.Status = PlayerGrabbing
	switch e.Kind {
	case KindFireStaff:
		w.homing.fire = true
		w.homing.target = centre
	case KindIceStaff:
		w.homing.ice = true
		w.homing.target = centre
	}
	w.sink.Grabbed(*e)
	return true
}

func (w *World) release() bool {
	var e *Elemental
	for i := range w.elementals {
		if w.elementals[i].Status == StatusGrabbed {
			e = &w.elementals[i]
			break
		}
	}
	if e == nil {
		return false
	}

	e.Status = StatusMoving
	e.Pos = w.PlayerCenter()
	w.resetWander(e)
	switch e.Kind {
	case KindFireStaff:
		w.endHoming(KindFire)
	case KindIceStaff:
		w.endHoming(KindIce)
	}
	w.player.Status = PlayerMoving
	w.sink.Released(*e)
	return true
}

// endHoming clears the staff flag for element and drops the agents that were
// homing back into local wandering around where they stand.
func (w *World) endHoming(element Kind) {
	if element == KindFire {
		w.homing.fire = false
	} else {
		w.homing.ice = false
	}
	for i := range w.elementals {
		e := &w.elementals[i]
		if e.Kind == element && e.Status == StatusMoving {
			w.resetWander(e)
		}
	}
}

// aimHoming moves the shared homing target while a staff is held.
func (w *World) aimHoming(in Input) {
	if !w.homing.any() {
		return
	}
	if in.HasCursor {
		w.homing.target = in.Cursor
		return
	}
	w.homing.target = w.PlayerCenter()
}
