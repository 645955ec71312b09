package content

// storyLines is the fixed narrative shown in the title panel, advanced
// one line at a time by the player.
var storyLines = []string{
	"Captain Nova's rocket is out of fuel, stranded on a tiny moon.",
	"But this is no ordinary rocket. It runs on MUSIC.",
	"Every right note you play pumps starlight into the fuel tank.",
	"Finish all the lessons and the tank fills enough to fly home.",
	"Ready, pilot? The piano is your control panel.",
}

// StoryLines returns the narrative lines in order. The slice is a copy.
func StoryLines() []string {
	out := make([]string, len(storyLines))
	copy(out, storyLines)
	return out
}

// StoryLength returns the number of narrative lines.
func StoryLength() int {
	return len(storyLines)
}

// StoryLineAt returns the line at index, or empty for out of range.
func StoryLineAt(index int) string {
	if index < 0 || index >= len(storyLines) {
		return ""
	}
	return storyLines[index]
}
