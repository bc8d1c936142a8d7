package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Cue names a one-shot sound.
type Cue uint8

const (
	CueDry Cue = iota
	CueFreeze
	CueGrass
	CueGrab
	CueRelease
	CueHeal
	CueHit
	CueVictory
	cueCount
)

var cueNames = [cueCount]string{"dry", "freeze", "grass", "grab", "release", "heal", "hit", "victory"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ParseCue maps a cue name back to its value.
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

type wave uint8

const (
	waveSine wave = iota
	waveSquare
	waveTriangle
	waveSaw
)

type note struct {
	freq float64
	dur  time.Duration
}

// recipe describes how a cue is synthesized.
type recipe struct {
	wave  wave
	notes []note
	gain  float64
}

var recipes = [cueCount]recipe{
	CueDry:     {wave: waveSaw, gain: 0.10, notes: []note{{220, 90 * time.Millisecond}}},
	CueFreeze:  {wave: waveTriangle, gain: 0.15, notes: []note{{1320, 60 * time.Millisecond}, {1760, 60 * time.Millisecond}}},
	CueGrass:   {wave: waveSine, gain: 0.15, notes: []note{{660, 80 * time.Millisecond}}},
	CueGrab:    {wave: waveSquare, gain: 0.10, notes: []note{{440, 50 * time.Millisecond}, {660, 70 * time.Millisecond}}},
	CueRelease: {wave: waveSquare, gain: 0.10, notes: []note{{660, 50 * time.Millisecond}, {440, 70 * time.Millisecond}}},
	CueHeal:    {wave: waveSine, gain: 0.12, notes: []note{{880, 120 * time.Millisecond}}},
	CueHit:     {wave: waveSaw, gain: 0.18, notes: []note{{110, 150 * time.Millisecond}}},
	CueVictory: {wave: waveSine, gain: 0.20, notes: []note{
		{523.25, 150 * time.Millisecond},
		{659.25, 150 * time.Millisecond},
		{783.99, 150 * time.Millisecond},
		{1046.5, 400 * time.Millisecond},
	}},
}

func tone(sr beep.SampleRate, w wave, freq float64) (beep.Streamer, error) {
	switch w {
	case waveSquare:
		return generators.SquareTone(sr, freq)
	case waveTriangle:
		return generators.TriangleTone(sr, freq)
	case waveSaw:
		return generators.SawtoothTone(sr, freq)
	default:
		return generators.SineTone(sr, freq)
	}
}

// synth renders r at the given pitch multiplier as a finite streamer.
func synth(sr beep.SampleRate, r recipe, pitch float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(r.notes))
	for _, n := range r.notes {
		osc, err := tone(sr, r.wave, n.freq*pitch)
		if err != nil {
			return nil, err
		}
		total := sr.N(n.dur)
		parts = append(parts, newDecay(beep.Take(total, osc), total, sr.N(5*time.Millisecond)))
	}
	return newVolume(beep.Seq(parts...), r.gain), nil
}
