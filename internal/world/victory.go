package world

// CheckVictory latches the first time dominance saturates, emitting the
// victory event exactly once, and reports true on every call afterwards.
func (w *World) CheckVictory() bool {
	if w.victory.latched {
		return true
	}
	if w.dominance < 1 {
		return false
	}
	w.victory.latched = true
	w.sink.VictoryReached()
	return true
}
