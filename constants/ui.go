package constants

import "time"

// UI Layout Constants
const (
	// StoryPanelHeight is the number of rows reserved for the title/story panel
	StoryPanelHeight = 4

	// StatsPanelHeight is the number of rows for score/fuel/combo
	StatsPanelHeight = 3

	// LessonPanelHeight is the number of rows for the lesson name and note queue
	LessonPanelHeight = 4

	// KeyboardHeight is the number of rows the piano keyboard occupies
	KeyboardHeight = 6

	// StatusBarHeight is the single help/notice row at the bottom
	StatusBarHeight = 1

	// FuelBarSegments is the number of segments in the fuel gauge
	FuelBarSegments = 10

	// WhiteKeyWidth is the rendered width of one natural piano key
	WhiteKeyWidth = 4
)

// Starfield Animation
const (
	// StarDensity is the fraction of animation cells holding a star
	StarDensity = 0.02

	// StarScrollInterval is how often the starfield shifts one column
	StarScrollInterval = 100 * time.Millisecond
)

// Status Messages
const (
	// DegradedAudioNotice is shown once when no audio backend is available
	DegradedAudioNotice = "sound device unavailable, using terminal bell"
)
