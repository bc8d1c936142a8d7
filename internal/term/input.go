// Package term is a terminal front end for the game built on tcell.
package term

import (
	"time"

	"spring-guardian/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// HoldWindow is how long a direction stays held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const HoldWindow = 300 * time.Millisecond

// Action is a front-end command decoded from a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionMute
	ActionHeat
)

type direction uint8

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// Keys turns key and mouse events into per-tick session input.
type Keys struct {
	held     [dirCount]time.Time
	interact bool
	confirm  bool
	restart  bool
	cursor   mgl64.Vec2
	pointer  bool
}

// HandleKey records a key event and returns any front-end action it maps to.
func (k *Keys) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	return k.handle(ev.Key(), ev.Rune(), now)
}

func (k *Keys) handle(key tcell.Key, r rune, now time.Time) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		k.held[dirLeft] = now
	case tcell.KeyRight:
		k.held[dirRight] = now
	case tcell.KeyUp:
		k.held[dirUp] = now
	case tcell.KeyDown:
		k.held[dirDown] = now
	case tcell.KeyEnter:
		k.confirm = true
	case tcell.KeyRune:
		return k.handleRune(r, now)
	}
	return ActionNone
}

func (k *Keys) handleRune(r rune, now time.Time) Action {
	switch r {
	case 'a', 'A':
		k.held[dirLeft] = now
	case 'd', 'D':
		k.held[dirRight] = now
	case 'w', 'W':
		k.held[dirUp] = now
	case 's', 'S':
		k.held[dirDown] = now
	case ' ', 'e', 'E':
		k.interact = true
	case 'r', 'R':
		k.restart = true
	case 'q', 'Q':
		return ActionQuit
	case 'p', 'P':
		return ActionPause
	case 'm', 'M':
		return ActionMute
	case 'h', 'H':
		return ActionHeat
	}
	return ActionNone
}

// Point records the pointer position in world pixels; ok is false when the
// pointer left the map.
func (k *Keys) Point(pos mgl64.Vec2, ok bool) {
	k.cursor = pos
	k.pointer = ok
}

// Input returns the session input for a tick at now. One-shot presses are
// consumed.
func (k *Keys) Input(now time.Time) game.Input {
	var in game.Input
	if k.isHeld(dirLeft, now) {
		in.Move[0]--
	}
	if k.isHeld(dirRight, now) {
		in.Move[0]++
	}
	if k.isHeld(dirUp, now) {
		in.Move[1]--
	}
	if k.isHeld(dirDown, now) {
		in.Move[1]++
	}
	in.Interact, in.Confirm, in.Restart = k.interact, k.confirm, k.restart
	k.interact, k.confirm, k.restart = false, false, false
	in.Cursor, in.HasCursor = k.cursor, k.pointer
	return in
}

func (k *Keys) isHeld(d direction, now time.Time) bool {
	t := k.held[d]
	return !t.IsZero() && now.Sub(t) < HoldWindow
}
