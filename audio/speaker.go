package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rocket-piano/constants"
	"github.com/lixenwraith/rocket-piano/music"
)

const speakerSampleRate = beep.SampleRate(constants.AudioSampleRate)

// speakerSink is the in-process fallback when no external backend exists:
// tones are synthesized directly through the system speaker
type speakerSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// newSpeakerSink initializes the speaker. Failure means no audio device;
// the caller degrades to the terminal bell.
func newSpeakerSink() (*speakerSink, error) {
	s := &speakerSink{mixer: &beep.Mixer{}}

	err := speaker.Init(speakerSampleRate, speakerSampleRate.N(100*time.Millisecond))
	if err != nil {
		return nil, err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// cleanup silences and detaches all streamers
func (s *speakerSink) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Clear()
	s.initialized = false
}

// playTone plays one enveloped sine at freq for the given duration
func (s *speakerSink) playTone(freq float64, duration time.Duration, gain float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	n := speakerSampleRate.N(duration)
	s.mixer.Add(beep.Take(n, newToneStreamer(speakerSampleRate, freq, gain, n)))
}

// playJingle plays the fixed ascending arpeggio as a sequence
func (s *speakerSink) playJingle(gain float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	n := speakerSampleRate.N(constants.JingleNoteDuration)
	parts := make([]beep.Streamer, 0, len(jingleMIDI))
	for _, midi := range jingleMIDI {
		parts = append(parts, beep.Take(n, newToneStreamer(speakerSampleRate, music.NoteFreq(midi), gain, n)))
	}
	s.mixer.Add(beep.Seq(parts...))
}

// playError plays the fixed low buzz
func (s *speakerSink) playError(gain float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	n := speakerSampleRate.N(constants.ErrorSoundDuration)
	s.mixer.Add(beep.Take(n, newBuzzStreamer(speakerSampleRate, constants.ErrorSoundFreq, gain)))
}

// toneStreamer generates an enveloped sine wave
type toneStreamer struct {
	sr    beep.SampleRate
	freq  float64
	gain  float64
	pos   int
	total int
}

func newToneStreamer(sr beep.SampleRate, freq, gain float64, total int) *toneStreamer {
	return &toneStreamer{sr: sr, freq: freq, gain: gain, total: total}
}

func (g *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	attack := g.sr.N(constants.NoteAttack)
	release := g.sr.N(constants.NoteRelease)

	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := g.gain * 0.3 * math.Sin(2*math.Pi*g.freq*t)

		// Attack/release envelope
		if attack > 0 && g.pos < attack {
			sample *= float64(g.pos) / float64(attack)
		} else if release > 0 && g.pos >= g.total-release {
			sample *= float64(g.total-g.pos) / float64(release)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneStreamer) Err() error {
	return nil
}

// buzzStreamer generates a harsh low buzz with harmonics
type buzzStreamer struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

func newBuzzStreamer(sr beep.SampleRate, freq, gain float64) *buzzStreamer {
	return &buzzStreamer{sr: sr, freq: freq, gain: gain}
}

func (g *buzzStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in to avoid a click
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * g.gain * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzStreamer) Err() error {
	return nil
}
