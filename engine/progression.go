package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/rocket-piano/constants"
	"github.com/lixenwraith/rocket-piano/content"
	"github.com/lixenwraith/rocket-piano/music"
)

// AudioSink is the playback collaborator. All calls are fire-and-forget;
// failures are swallowed by the implementation and never reach the engine.
type AudioSink interface {
	PlayNote(note music.Note, duration time.Duration)
	PlaySuccessJingle()
	PlayError()
}

// Feedback prompts
const (
	storyPrompt      = "Press SPACE to continue the story"
	lessonPrompt     = "Press ENTER to begin your lesson"
	missionComplete  = "MISSION COMPLETE! The tank is full - blast off, Captain!"
	lessonDonePraise = "Lesson complete! Fuel loaded. Press ENTER when you're ready for the next one."
)

// ProgressionEngine encodes the rules of story advancement, lesson
// start/stop and note scoring. It is the only component that mutates
// GameState.
type ProgressionEngine struct {
	state     *GameState
	audio     AudioSink
	scheduler *Scheduler
	clock     TimeProvider

	lessons  []content.Lesson
	storyLen int
}

// NewProgressionEngine wires the engine to its state, collaborators and catalogs
func NewProgressionEngine(state *GameState, audio AudioSink, scheduler *Scheduler, clock TimeProvider) *ProgressionEngine {
	return &ProgressionEngine{
		state:     state,
		audio:     audio,
		scheduler: scheduler,
		clock:     clock,
		lessons:   content.Lessons(),
		storyLen:  content.StoryLength(),
	}
}

// AdvanceStory moves the narrative pointer forward one line, clamped at
// the story length. Advancing past the end is a silent no-op.
func (e *ProgressionEngine) AdvanceStory() {
	idx, moved := e.state.AdvanceStoryIndex(e.storyLen)
	if !moved {
		return
	}
	if idx == e.storyLen {
		e.state.SetFeedback(lessonPrompt, FeedbackInfo)
	} else {
		e.state.SetFeedback(storyPrompt, FeedbackInfo)
	}
}

// StartLesson activates the next lesson in catalog order. Once the last
// lesson has been started the call is permanently a no-op; that is the
// terminal state of the progression, not an error.
func (e *ProgressionEngine) StartLesson() {
	cur := e.state.GetLessonIndex()
	if cur >= len(e.lessons)-1 {
		return
	}

	next := cur + 1
	lesson, ok := content.LessonAt(next)
	if !ok {
		return
	}

	e.state.ResetCombo()
	e.state.ActivateLesson(next, lesson.Notes)
	e.state.SetFeedback(fmt.Sprintf("%s - %s", lesson.Name, lesson.Instruction), FeedbackInfo)
}

// HandleNote processes one played note. Audio and the lit-key highlight
// fire unconditionally; scoring only applies while a lesson is active.
// Free play outside a lesson never touches score, fuel or combo.
func (e *ProgressionEngine) HandleNote(note music.Note) {
	e.audio.PlayNote(note, constants.NoteDuration)

	e.state.SetLitNote(note.Name, e.clock.Now())
	e.scheduler.Schedule(constants.KeyLitDuration, e.state.ClearLitNote)

	if !e.state.GetPlaying() {
		return
	}
	expected, ok := e.state.PeekExpected()
	if !ok {
		return
	}

	if note.Name != expected {
		e.state.ResetCombo()
		e.state.SetFeedback(fmt.Sprintf("Oops! That was %s - the rocket needs %s", note.Name, expected), FeedbackError)
		e.audio.PlayError()
		return
	}

	combo := e.state.IncrementCombo()
	e.state.AddScore(hitPoints(combo))
	e.state.AddFuelClamped(constants.HitFuelIncrease)

	if e.state.PopExpected() == 0 {
		e.state.SetFeedback("You did it! The fuel pump is humming...", FeedbackSuccess)
		e.audio.PlaySuccessJingle()
		e.scheduler.Schedule(constants.LessonCompleteDelay, e.CompleteLesson)
		return
	}

	next, _ := e.state.PeekExpected()
	e.state.SetFeedback(fmt.Sprintf("Great! Now play %s", next), FeedbackSuccess)
}

// CompleteLesson banks the active lesson's fuel reward and returns the
// session to idle. Completing the final lesson tops the tank off and
// shows the mission-complete message; StartLesson is a no-op from then on.
func (e *ProgressionEngine) CompleteLesson() {
	idx := e.state.GetLessonIndex()
	if idx < 0 || idx >= len(e.lessons) {
		return
	}

	e.state.AddFuelClamped(e.lessons[idx].Reward)
	e.state.SetPlaying(false)

	if idx == len(e.lessons)-1 {
		e.state.SetFuel(constants.MaxFuel)
		e.state.SetFeedback(missionComplete, FeedbackSuccess)
		return
	}
	e.state.SetFeedback(lessonDonePraise, FeedbackSuccess)
}

// hitPoints computes the score for one correct note.
// Canonical rule: 10 * max(1, floor(combo * 1.5))
func hitPoints(combo int) int {
	mult := int(math.Floor(float64(combo) * constants.ComboMultiplierStep))
	if mult < 1 {
		mult = 1
	}
	return constants.PointsPerHitBase * mult
}
