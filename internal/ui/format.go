package ui

import (
	"fmt"
	"strconv"

	"spring-guardian/internal/core"
	"spring-guardian/internal/game"
	"spring-guardian/internal/world"
)

// TallyText formats the spring tile counter.
func TallyText(grass, total int) string {
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(grass) / float64(total)
	}
	return fmt.Sprintf("Spring Tiles: %d / %d (%.2f%%)", grass, total, pct)
}

// HealthText formats the player's health readout.
func HealthText(h world.Health) string {
	if h.Dead {
		return "Health: withered"
	}
	return fmt.Sprintf("Health: %.0f / %.0f", h.Current, h.Max)
}

// LevelText formats the level banner.
func LevelText(number int, title string) string {
	return fmt.Sprintf("Level %d: %s", number, title)
}

// Banner returns the centred message for a session state, or "" while
// playing.
func Banner(state game.State) string {
	switch state {
	case game.StateStarting:
		return "Press Enter to begin"
	case game.StateVictory:
		return "Spring has returned!"
	case game.StateGameOver:
		return "You withered away. Press Enter to try again"
	default:
		return ""
	}
}

// FormatControlValue renders a control value with precision matched to its
// step size.
func FormatControlValue(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// Nudge returns value moved one step in direction, clamped to the control's
// range, and whether it changed.
func Nudge(ctrl core.ParameterControl, value float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := value + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if target == value || direction == 0 {
		return value, false
	}
	return target, true
}
