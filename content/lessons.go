package content

import (
	"fmt"

	"github.com/lixenwraith/rocket-piano/music"
)

var lessons = []Lesson{
	{
		Name:        "The C Major Scale",
		Instruction: "Climb the ladder! Play every white key from C4 up to C5.",
		Notes:       []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"},
		Reward:      20,
	},
	{
		Name:        "Hot Cross Buns",
		Instruction: "Three notes are all you need. Down, down, rest on C.",
		Notes:       []string{"E4", "D4", "C4", "E4", "D4", "C4", "C4", "C4", "D4", "D4", "E4", "D4", "C4"},
		Reward:      20,
	},
	{
		Name:        "Mary Had a Little Lamb",
		Instruction: "The lamb follows Mary everywhere. Follow the notes!",
		Notes:       []string{"E4", "D4", "C4", "D4", "E4", "E4", "E4", "D4", "D4", "D4", "E4", "G4", "G4"},
		Reward:      25,
	},
	{
		Name:        "Twinkle Twinkle",
		Instruction: "Little star, big jumps. Watch out for the leap to G.",
		Notes:       []string{"C4", "C4", "G4", "G4", "A4", "A4", "G4", "F4", "F4", "E4", "E4", "D4", "D4", "C4"},
		Reward:      25,
	},
	{
		Name:        "Black Key Blastoff",
		Instruction: "Time for the black keys. Sharp notes for a sharp pilot!",
		Notes:       []string{"C4", "C#4", "D4", "D#4", "E4", "F4", "F#4", "G4", "G#4", "A4", "A#4", "B4", "C5"},
		Reward:      30,
	},
}

// Lessons returns the ordered lesson catalog. The returned slice is a copy.
func Lessons() []Lesson {
	out := make([]Lesson, len(lessons))
	copy(out, lessons)
	return out
}

// LessonCount returns the number of lessons in the catalog.
func LessonCount() int {
	return len(lessons)
}

// LessonAt returns the lesson at index, with its note sequence copied so
// callers may consume it destructively.
func LessonAt(index int) (Lesson, bool) {
	if index < 0 || index >= len(lessons) {
		return Lesson{}, false
	}
	l := lessons[index]
	notes := make([]string, len(l.Notes))
	copy(notes, l.Notes)
	l.Notes = notes
	return l, true
}

// Validate confirms every lesson note resolves in the note catalog, so a
// bad catalog edit fails at startup instead of mid-lesson.
func Validate() error {
	for i, l := range lessons {
		for _, n := range l.Notes {
			if _, ok := music.ByName(n); !ok {
				return fmt.Errorf("lesson %d (%s): unknown note %q", i, l.Name, n)
			}
		}
	}
	return nil
}
