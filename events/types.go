package events

import (
	"time"

	"github.com/lixenwraith/rocket-piano/music"
)

// EventType represents the type of game event
type EventType int

const (
	// EventNotePlayed carries a bound piano key press
	// Producer: input poller | Consumer: ProgressionEngine.HandleNote
	EventNotePlayed EventType = iota

	// EventAdvanceStory moves the narrative one line (space key)
	EventAdvanceStory

	// EventStartLesson activates the next lesson (enter key)
	EventStartLesson

	// EventToggleMute flips sound effect muting
	EventToggleMute

	// EventResize carries new terminal dimensions
	EventResize

	// EventQuit requests a clean shutdown
	EventQuit
)

// GameEvent is one input intent crossing from the poll goroutine to the game loop
type GameEvent struct {
	Type      EventType
	Note      music.Note // valid for EventNotePlayed
	Width     int        // valid for EventResize
	Height    int
	Timestamp time.Time
}
