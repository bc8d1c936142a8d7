package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerOutput mixes onto the system audio device.
type speakerOutput struct {
	mixer *beep.Mixer
}

// OpenSpeaker initialises the audio device and starts an empty mixer on it.
func OpenSpeaker() (Output, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	out := &speakerOutput{mixer: &beep.Mixer{}}
	speaker.Play(out.mixer)
	return out, nil
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *speakerOutput) Do(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

// CloseSpeaker stops playback and releases the device.
func CloseSpeaker() {
	speaker.Clear()
	speaker.Close()
}
