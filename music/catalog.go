package music

import "unicode"

// The playable range is one octave plus the next C, C4 through C5.
// Naturals sit on the home row and accidentals on the row above,
// mapping roughly to piano fingering.
var noteDefs = []struct {
	name       string
	midi       int
	key        rune
	accidental bool
}{
	{"C4", 60, 'a', false},
	{"C#4", 61, 'w', true},
	{"D4", 62, 's', false},
	{"D#4", 63, 'e', true},
	{"E4", 64, 'd', false},
	{"F4", 65, 'f', false},
	{"F#4", 66, 't', true},
	{"G4", 67, 'g', false},
	{"G#4", 68, 'y', true},
	{"A4", 69, 'h', false},
	{"A#4", 70, 'u', true},
	{"B4", 71, 'j', false},
	{"C5", 72, 'k', false},
}

var (
	notes  []Note
	byKey  map[rune]Note
	byName map[string]Note
)

func init() {
	notes = make([]Note, 0, len(noteDefs))
	byKey = make(map[rune]Note, len(noteDefs))
	byName = make(map[string]Note, len(noteDefs))

	for _, def := range noteDefs {
		n := Note{
			Name:       def.name,
			MIDI:       def.midi,
			Freq:       NoteFreq(def.midi),
			Key:        def.key,
			Accidental: def.accidental,
		}
		notes = append(notes, n)
		byKey[def.key] = n
		byName[def.name] = n
	}
}

// Notes returns the catalog in keyboard order, low to high.
// The returned slice is a copy; the catalog is immutable for the session.
func Notes() []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

// FromKey resolves a pressed key to its bound note, case-insensitive.
func FromKey(r rune) (Note, bool) {
	n, ok := byKey[unicode.ToLower(r)]
	return n, ok
}

// ByName resolves a symbolic note name like "F#4".
func ByName(name string) (Note, bool) {
	n, ok := byName[name]
	return n, ok
}

// Count returns the number of playable notes.
func Count() int {
	return len(notes)
}
