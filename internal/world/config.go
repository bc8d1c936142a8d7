package world

import (
	"math"
	"strconv"
)

const (
	// StateMin and StateMax bound the continuous tile state.
	StateMin = 0.0
	StateMax = 1.0

	stateEpsilon = 1e-6
)

// Params holds tunable thresholds and rates for the world simulation. The
// band thresholds are level parameters: levels adjust them for balance.
type Params struct {
	DryUpper   float64
	GrassUpper float64

	InfluenceRadius float64
	InfluencePower  float64
	GrassResistance float64
	SpringBoost     float64

	FireSpeed         float64
	IceSpeed          float64
	SpringSpeed       float64
	ArrivalsPerGrowth int

	PlayerSpeed   float64
	CaptureRadius float64

	MaxHealth     float64
	DamagePerTick float64
	TickInterval  float64
}

// GrassMid is the state Spring agents pull tiles toward.
func (p Params) GrassMid() float64 { return (p.DryUpper + p.GrassUpper) / 2 }

// Config controls world construction.
type Config struct {
	TileSize int
	Seed     int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TileSize: 32,
		Seed:     1337,
		Params: Params{
			DryUpper:          1.0 / 3.0,
			GrassUpper:        2.0 / 3.0,
			InfluenceRadius:   4,
			InfluencePower:    0.6,
			GrassResistance:   0.3,
			SpringBoost:       3,
			FireSpeed:         40,
			IceSpeed:          40,
			SpringSpeed:       0,
			ArrivalsPerGrowth: 3,
			PlayerSpeed:       120,
			CaptureRadius:     40,
			MaxHealth:         100,
			DamagePerTick:     5,
			TickInterval:      1,
		},
	}
}

type floatField struct {
	key      string
	label    string
	min, max float64
	setter   func(*Params, float64)
}

var floatFields = []floatField{
	{"dry_upper", "Dry band upper", 0, 1, func(p *Params, v float64) { p.DryUpper = v }},
	{"grass_upper", "Grass band upper", 0, 1, func(p *Params, v float64) { p.GrassUpper = v }},
	{"influence_radius", "Influence radius", 0, 64, func(p *Params, v float64) { p.InfluenceRadius = v }},
	{"influence_power", "Influence power", 0, 100, func(p *Params, v float64) { p.InfluencePower = v }},
	{"grass_resistance", "Grass resistance", 0, 1, func(p *Params, v float64) { p.GrassResistance = v }},
	{"spring_boost", "Spring boost", 0, 100, func(p *Params, v float64) { p.SpringBoost = v }},
	{"fire_speed", "Fire speed", 0, 1000, func(p *Params, v float64) { p.FireSpeed = v }},
	{"ice_speed", "Ice speed", 0, 1000, func(p *Params, v float64) { p.IceSpeed = v }},
	{"spring_speed", "Spring speed", 0, 1000, func(p *Params, v float64) { p.SpringSpeed = v }},
	{"player_speed", "Player speed", 0, 2000, func(p *Params, v float64) { p.PlayerSpeed = v }},
	{"capture_radius", "Capture radius", 0, 1000, func(p *Params, v float64) { p.CaptureRadius = v }},
	{"max_health", "Max health", 1, 1e6, func(p *Params, v float64) { p.MaxHealth = v }},
	{"damage_per_tick", "Damage per tick", 0, 1e6, func(p *Params, v float64) { p.DamagePerTick = v }},
	{"tick_interval", "Tick interval", 0.01, 60, func(p *Params, v float64) { p.TickInterval = v }},
}

func lookupFloatField(key string) (floatField, bool) {
	for _, field := range floatFields {
		if field.key == key {
			return field, true
		}
	}
	return floatField{}, false
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns a copy of c with the recognised keys of cfg applied.
// Unknown keys and unparsable values are ignored.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["tile_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["arrivals_per_growth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.ArrivalsPerGrowth = parsed
		}
	}
	// elemental_speed sets fire and ice together; the specific keys below win.
	if v, ok := cfg["elemental_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1000 {
			c.Params.FireSpeed = parsed
			c.Params.IceSpeed = parsed
		}
	}
	for _, field := range floatFields {
		v, ok := cfg[field.key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) || parsed < field.min || parsed > field.max {
			continue
		}
		field.setter(&c.Params, parsed)
	}
	c.Params.normalizeBands()
	return c
}

func (p *Params) normalizeBands() {
	if p.GrassUpper < p.DryUpper {
		p.GrassUpper = p.DryUpper
	}
}
