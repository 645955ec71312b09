package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rocket-piano/constants"
)

// GameState centralizes session state with clear ownership boundaries.
// It is mutated exclusively by the ProgressionEngine; the render layer
// only reads it through snapshot accessors.
type GameState struct {
	// ===== REAL-TIME STATE (lock-free atomics) =====

	// Scoring
	Score atomic.Int64 // Total score, never decreases
	Fuel  atomic.Int64 // Fuel gauge, clamped [0, MaxFuel]
	Combo atomic.Int64 // Consecutive correct notes, resets on miss

	// Frame counter (incremented each render)
	FrameNumber atomic.Int64

	// ===== EVENT-TICK STATE (mutex protected) =====
	// Updated only on input events and scheduled tasks

	mu sync.RWMutex

	// Lesson progression
	CurrentLessonIndex int      // -1 until the first lesson starts
	ExpectedNotes      []string // remaining notes of the active lesson
	IsPlaying          bool     // true while a lesson awaits input

	// Story progression
	StoryIndex int // [0, StoryLength], monotonic

	// Feedback
	Message      string
	MessageKind  FeedbackKind
	AudioNotice  string // one-time degraded audio notice, empty when audio is fine
	EffectsMuted bool

	// Lit key (presentation feedback, cleared by a scheduled task)
	LitNote  string
	LitSince time.Time
}

// NewGameState creates a session state with initial values
func NewGameState() *GameState {
	gs := &GameState{
		CurrentLessonIndex: -1,
	}
	gs.Score.Store(0)
	gs.Fuel.Store(0)
	gs.Combo.Store(0)
	gs.FrameNumber.Store(0)
	return gs
}

// ===== SCORE ACCESSORS (atomic) =====

// GetScore returns the current score
func (gs *GameState) GetScore() int {
	return int(gs.Score.Load())
}

// AddScore adds points to the score
func (gs *GameState) AddScore(points int) {
	gs.Score.Add(int64(points))
}

// ===== FUEL ACCESSORS (atomic) =====

// GetFuel returns the current fuel value
func (gs *GameState) GetFuel() int {
	return int(gs.Fuel.Load())
}

// AddFuelClamped adds fuel, clamping to [0, MaxFuel]
func (gs *GameState) AddFuelClamped(delta int) {
	for {
		cur := gs.Fuel.Load()
		next := cur + int64(delta)
		if next > constants.MaxFuel {
			next = constants.MaxFuel
		}
		if next < 0 {
			next = 0
		}
		if gs.Fuel.CompareAndSwap(cur, next) {
			return
		}
	}
}

// SetFuel sets the fuel value directly, clamped to [0, MaxFuel]
func (gs *GameState) SetFuel(fuel int) {
	if fuel > constants.MaxFuel {
		fuel = constants.MaxFuel
	}
	if fuel < 0 {
		fuel = 0
	}
	gs.Fuel.Store(int64(fuel))
}

// ===== COMBO ACCESSORS (atomic) =====

// GetCombo returns the consecutive-correct counter
func (gs *GameState) GetCombo() int {
	return int(gs.Combo.Load())
}

// IncrementCombo increments and returns the combo counter
func (gs *GameState) IncrementCombo() int {
	return int(gs.Combo.Add(1))
}

// ResetCombo sets the combo counter to zero
func (gs *GameState) ResetCombo() {
	gs.Combo.Store(0)
}

// ===== FRAME COUNTER ACCESSORS (atomic) =====

// GetFrameNumber returns the current frame number
func (gs *GameState) GetFrameNumber() int64 {
	return gs.FrameNumber.Load()
}

// IncrementFrameNumber increments and returns the frame number
func (gs *GameState) IncrementFrameNumber() int64 {
	return gs.FrameNumber.Add(1)
}

// ===== LESSON STATE ACCESSORS (mutex protected) =====

// GetLessonIndex returns the active lesson index, -1 before the first lesson
func (gs *GameState) GetLessonIndex() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.CurrentLessonIndex
}

// GetPlaying returns whether a lesson is actively awaiting input
func (gs *GameState) GetPlaying() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.IsPlaying
}

// SetPlaying sets the playing flag
func (gs *GameState) SetPlaying(playing bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.IsPlaying = playing
}

// ActivateLesson installs a new lesson's note queue and marks the session playing
func (gs *GameState) ActivateLesson(index int, notes []string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.CurrentLessonIndex = index
	gs.ExpectedNotes = notes
	gs.IsPlaying = true
}

// PeekExpected returns the next required note without consuming it
func (gs *GameState) PeekExpected() (string, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if len(gs.ExpectedNotes) == 0 {
		return "", false
	}
	return gs.ExpectedNotes[0], true
}

// PopExpected consumes the head of the note queue and reports how many remain
func (gs *GameState) PopExpected() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if len(gs.ExpectedNotes) == 0 {
		return 0
	}
	gs.ExpectedNotes = gs.ExpectedNotes[1:]
	return len(gs.ExpectedNotes)
}

// ExpectedCount returns the number of remaining required notes
func (gs *GameState) ExpectedCount() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.ExpectedNotes)
}

// ===== STORY STATE ACCESSORS (mutex protected) =====

// GetStoryIndex returns the narrative pointer
func (gs *GameState) GetStoryIndex() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.StoryIndex
}

// AdvanceStoryIndex increments the story pointer clamped at length,
// returning the new value and whether it moved
func (gs *GameState) AdvanceStoryIndex(length int) (int, bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.StoryIndex >= length {
		return gs.StoryIndex, false
	}
	gs.StoryIndex++
	return gs.StoryIndex, true
}

// ===== FEEDBACK ACCESSORS (mutex protected) =====

// SetFeedback records the last user-facing message
func (gs *GameState) SetFeedback(message string, kind FeedbackKind) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Message = message
	gs.MessageKind = kind
}

// SetAudioNotice records the one-time degraded audio notice
func (gs *GameState) SetAudioNotice(notice string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.AudioNotice = notice
}

// ToggleEffectsMuted flips the mute flag and returns the new value
func (gs *GameState) ToggleEffectsMuted() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.EffectsMuted = !gs.EffectsMuted
	return gs.EffectsMuted
}

// GetEffectsMuted returns the mute flag
func (gs *GameState) GetEffectsMuted() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.EffectsMuted
}

// ===== LIT KEY ACCESSORS (mutex protected) =====

// SetLitNote marks a note as visually lit on the keyboard
func (gs *GameState) SetLitNote(name string, now time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.LitNote = name
	gs.LitSince = now
}

// ClearLitNote clears the lit key flag unconditionally.
// A stale scheduled clear may wipe a newer key's highlight; accepted
// visual jitter, the timers are never cancelled.
func (gs *GameState) ClearLitNote() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.LitNote = ""
	gs.LitSince = time.Time{}
}

// ===== SNAPSHOTS =====

// ProgressSnapshot is a consistent read-only view for the render layer
type ProgressSnapshot struct {
	Score       int
	Fuel        int
	Combo       int
	LessonIndex int
	StoryIndex  int
	Playing     bool
	Remaining   []string
	NextNote    string
}

// ReadProgress returns a consistent snapshot of scoring and progression state
func (gs *GameState) ReadProgress() ProgressSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	remaining := make([]string, len(gs.ExpectedNotes))
	copy(remaining, gs.ExpectedNotes)

	next := ""
	if len(remaining) > 0 {
		next = remaining[0]
	}

	return ProgressSnapshot{
		Score:       int(gs.Score.Load()),
		Fuel:        int(gs.Fuel.Load()),
		Combo:       int(gs.Combo.Load()),
		LessonIndex: gs.CurrentLessonIndex,
		StoryIndex:  gs.StoryIndex,
		Playing:     gs.IsPlaying,
		Remaining:   remaining,
		NextNote:    next,
	}
}

// FeedbackSnapshot is the last user-facing message plus ambient notices
type FeedbackSnapshot struct {
	Message      string
	Kind         FeedbackKind
	AudioNotice  string
	EffectsMuted bool
}

// ReadFeedback returns a consistent snapshot of the feedback state
func (gs *GameState) ReadFeedback() FeedbackSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return FeedbackSnapshot{
		Message:      gs.Message,
		Kind:         gs.MessageKind,
		AudioNotice:  gs.AudioNotice,
		EffectsMuted: gs.EffectsMuted,
	}
}

// KeyboardSnapshot is the lit key view for the keyboard renderer
type KeyboardSnapshot struct {
	LitNote  string
	LitSince time.Time
}

// ReadKeyboard returns a consistent snapshot of the lit key state
func (gs *GameState) ReadKeyboard() KeyboardSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return KeyboardSnapshot{
		LitNote:  gs.LitNote,
		LitSince: gs.LitSince,
	}
}
