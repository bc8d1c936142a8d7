package world

import "github.com/go-gl/mathgl/mgl64"

// TileType enumerates the discrete tile classifications.
type TileType uint8

const (
	TileDry TileType = iota
	TileGrass
	TileSnow
	TileBlock
	// TileNone marks cells whose ground code was not recognised. They load
	// with state 0 and are reclassified like any other tile.
	TileNone
)

func (t TileType) String() string {
	switch t {
	case TileDry:
		return "dry"
	case TileGrass:
		return "grass"
	case TileSnow:
		return "snow"
	case TileBlock:
		return "block"
	default:
		return "none"
	}
}

// Kind enumerates the elemental variants. There is no empty member: the
// registry only ever holds live agents.
type Kind uint8

const (
	KindFire Kind = iota
	KindIce
	KindSpring
	KindFireStaff
	KindIceStaff
)

func (k Kind) String() string {
	switch k {
	case KindFire:
		return "fire"
	case KindIce:
		return "ice"
	case KindSpring:
		return "spring"
	case KindFireStaff:
		return "fire-staff"
	case KindIceStaff:
		return "ice-staff"
	default:
		return "unknown"
	}
}

// IsStaff reports whether the kind is a passive staff pickup.
func (k Kind) IsStaff() bool { return k == KindFireStaff || k == KindIceStaff }

// AgentStatus is the capture state of an elemental.
type AgentStatus uint8

const (
	StatusMoving AgentStatus = iota
	StatusGrabbed
)

func (s AgentStatus) String() string {
	if s == StatusGrabbed {
		return "grabbed"
	}
	return "moving"
}

// PlayerStatus is the movement state of the player, independent of health.
type PlayerStatus uint8

const (
	PlayerIdle PlayerStatus = iota
	PlayerMoving
	PlayerGrabbing
	PlayerDead
)

func (s PlayerStatus) String() string {
	switch s {
	case PlayerMoving:
		return "moving"
	case PlayerGrabbing:
		return "grabbing"
	case PlayerDead:
		return "dead"
	default:
		return "idle"
	}
}

// Elemental is a mobile agent exerting climate influence, or a staff pickup.
type Elemental struct {
	ID     int
	Kind   Kind
	Status AgentStatus

	// Pos is the centre of the agent in world pixels.
	Pos    mgl64.Vec2
	Target mgl64.Vec2
	Speed  float64

	// MovementRadius is the half-width, in tiles, of the window new wander
	// targets are drawn from.
	MovementRadius      int
	arrivalsUntilGrowth int
}

// Health is the player's vitality record.
type Health struct {
	Current       float64
	Max           float64
	DamagePerTick float64
	UntilNextTick float64
	TickInterval  float64
	Dead          bool
}

// Player is the controllable character.
type Player struct {
	// Pos is the top-left corner of the player sprite in world pixels.
	Pos    mgl64.Vec2
	Speed  float64
	Status PlayerStatus
	Health Health
}

// Rect is an axis-aligned rectangle in world pixels; Max is exclusive.
type Rect struct {
	Min, Max mgl64.Vec2
}

// Overlaps reports whether the two rectangles share a non-empty area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X() < o.Max.X() && o.Min.X() < r.Max.X() &&
		r.Min.Y() < o.Max.Y() && o.Min.Y() < r.Max.Y()
}

// Input is the player intent sampled for one simulation step.
type Input struct {
	// Move is the desired direction; it is normalised before use.
	Move mgl64.Vec2
	// Interact is true on the frame the interact key was pressed.
	Interact bool
	// Cursor is the pointer position in world pixels, used as the homing
	// target while a staff is held. Ignored unless HasCursor is set.
	Cursor    mgl64.Vec2
	HasCursor bool
}
