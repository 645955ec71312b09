package music

import "math"

// Note is one playable piano key: symbolic name, equal-temperament
// frequency, MIDI number and the terminal key bound to it.
type Note struct {
	Name       string  // e.g. "C4", "F#4"
	MIDI       int     // C4 = 60
	Freq       float64 // Hz
	Key        rune    // bound input key, lowercase
	Accidental bool    // sharp/flat, rendered as a black key
}

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}
