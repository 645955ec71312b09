package constants

import "time"

// Fuel System
const (
	// MaxFuel is the maximum value for the fuel gauge (100%)
	MaxFuel = 100

	// HitFuelIncrease is the amount of fuel gained per correct note
	HitFuelIncrease = 5
)

// Scoring
const (
	// PointsPerHitBase is the base score awarded per correct note before the combo multiplier
	PointsPerHitBase = 10

	// ComboMultiplierStep scales the combo counter into the score multiplier
	ComboMultiplierStep = 1.5
)

// Lesson Progression Timing
const (
	// LessonCompleteDelay keeps the completion message and jingle on screen
	// before the lesson state resets
	LessonCompleteDelay = 2000 * time.Millisecond

	// KeyLitDuration is how long a struck piano key stays highlighted
	KeyLitDuration = 200 * time.Millisecond
)

// Note Playback
const (
	// NoteDuration is the default playback length of a struck note
	NoteDuration = 300 * time.Millisecond
)
