package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/rocket-piano/constants"
	"github.com/lixenwraith/rocket-piano/music"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constants.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(constants.AudioSampleRate))
}

// --- Sound Generators (unity gain) ---

// generateNoteTone renders one piano note as an enveloped sine
func generateNoteTone(freq float64, duration time.Duration) floatBuffer {
	buf := oscillator(waveSine, freq, durationToSamples(duration))
	applyEnvelope(buf, constants.NoteAttack, constants.NoteRelease)
	return buf
}

// generateErrorTone renders the fixed low miss buzz
func generateErrorTone() floatBuffer {
	buf := oscillator(waveSaw, constants.ErrorSoundFreq, durationToSamples(constants.ErrorSoundDuration))
	applyEnvelope(buf, constants.ErrorSoundAttack, constants.ErrorSoundRelease)
	return buf
}

// jingleMIDI is the fixed ascending arpeggio: C5 E5 G5 C6
var jingleMIDI = []int{72, 76, 79, 84}

// generateJingle renders the lesson-complete arpeggio
func generateJingle() floatBuffer {
	var out floatBuffer
	for _, midi := range jingleMIDI {
		tone := oscillator(waveSquare, music.NoteFreq(midi), durationToSamples(constants.JingleNoteDuration))
		applyEnvelope(tone, constants.JingleNoteAttack, constants.JingleNoteRelease)
		out = concatFloatBuffers(out, tone)
	}
	return out
}
