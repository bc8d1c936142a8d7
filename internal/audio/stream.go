package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// decay applies a short linear attack followed by a linear fade to silence.
type decay struct {
	s      beep.Streamer
	pos    int
	total  int
	attack int
}

func newDecay(s beep.Streamer, total, attack int) beep.Streamer {
	return &decay{s: s, total: max(total, 1), attack: attack}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(d.pos)/float64(d.total)
		if d.pos < d.attack {
			gain = min(gain, float64(d.pos)/float64(d.attack))
		}
		gain = max(gain, 0)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// newVolume wraps s in a linear gain; zero or less is silent.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

// drone is the endless ambient pad: two detuned sines with a slow swell.
type drone struct {
	sr  beep.SampleRate
	pos int
}

func (g *drone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*t/8)
		v := swell * (0.5*math.Sin(2*math.Pi*110*t) + 0.3*math.Sin(2*math.Pi*164.81*t) + 0.2*math.Sin(2*math.Pi*220.5*t))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *drone) Err() error { return nil }
