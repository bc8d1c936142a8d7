package world

import (
	"strconv"

	"spring-guardian/internal/core"
)

// Parameters returns the live tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				intParam("tile_size", "Tile size", w.cfg.TileSize),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name:    "Bands",
			Summary: "Continuous state thresholds separating dry, grass and snow.",
			Params: []core.Parameter{
				floatParam("dry_upper", "Dry band upper", params.DryUpper),
				floatParam("grass_upper", "Grass band upper", params.GrassUpper),
			},
		},
		{
			Name: "Diffusion",
			Params: []core.Parameter{
				floatParam("influence_radius", "Influence radius", params.InfluenceRadius),
				floatParam("influence_power", "Influence power", params.InfluencePower),
				floatParam("grass_resistance", "Grass resistance", params.GrassResistance),
				floatParam("spring_boost", "Spring boost", params.SpringBoost),
			},
		},
		{
			Name: "Elementals",
			Params: []core.Parameter{
				floatParam("fire_speed", "Fire speed", params.FireSpeed),
				floatParam("ice_speed", "Ice speed", params.IceSpeed),
				floatParam("spring_speed", "Spring speed", params.SpringSpeed),
				intParam("arrivals_per_growth", "Arrivals per radius growth", params.ArrivalsPerGrowth),
			},
		},
		{
			Name: "Player",
			Params: []core.Parameter{
				floatParam("player_speed", "Player speed", params.PlayerSpeed),
				floatParam("capture_radius", "Capture radius", params.CaptureRadius),
				floatParam("max_health", "Max health", params.MaxHealth),
				floatParam("damage_per_tick", "Damage per tick", params.DamagePerTick),
				floatParam("tick_interval", "Tick interval", params.TickInterval),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetFloatParameter updates a floating point tunable, clamping it to the
// parameter's range. Band changes take effect on the next classification
// pass; player and speed changes apply to the live records immediately.
func (w *World) SetFloatParameter(key string, value float64) bool {
	field, ok := lookupFloatField(key)
	if !ok {
		return false
	}
	field.setter(&w.cfg.Params, clampFloat(value, field.min, field.max))
	w.cfg.Params.normalizeBands()

	p := w.cfg.Params
	switch key {
	case "player_speed":
		w.player.Speed = p.PlayerSpeed
	case "max_health":
		w.player.Health.Max = p.MaxHealth
		w.player.Health.Current = min(w.player.Health.Current, p.MaxHealth)
	case "damage_per_tick":
		w.player.Health.DamagePerTick = p.DamagePerTick
	case "tick_interval":
		w.player.Health.TickInterval = p.TickInterval
	case "fire_speed", "ice_speed", "spring_speed":
		for i := range w.elementals {
			w.elementals[i].Speed = w.speedFor(w.elementals[i].Kind)
		}
	}
	return true
}

var controlSteps = map[string]float64{
	"dry_upper":        0.05,
	"grass_upper":      0.05,
	"influence_radius": 0.5,
	"influence_power":  0.1,
	"grass_resistance": 0.05,
	"spring_boost":     0.5,
	"fire_speed":       5,
	"ice_speed":        5,
	"spring_speed":     5,
	"player_speed":     10,
	"capture_radius":   4,
	"max_health":       10,
	"damage_per_tick":  1,
	"tick_interval":    0.1,
}

// ParameterControls lists every float tunable SetFloatParameter accepts.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(floatFields))
	for _, field := range floatFields {
		controls = append(controls, core.ParameterControl{
			Key:    field.key,
			Label:  field.label,
			Type:   core.ParamTypeFloat,
			Min:    field.min,
			Max:    field.max,
			Step:   controlSteps[field.key],
			HasMin: true,
			HasMax: true,
		})
	}
	return controls
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
