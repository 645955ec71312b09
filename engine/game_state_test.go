package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/rocket-piano/constants"
)

// TestGameStateInitialization verifies initial values
func TestGameStateInitialization(t *testing.T) {
	gs := NewGameState()

	if gs.GetScore() != 0 {
		t.Errorf("Expected initial score 0, got %d", gs.GetScore())
	}
	if gs.GetFuel() != 0 {
		t.Errorf("Expected initial fuel 0, got %d", gs.GetFuel())
	}
	if gs.GetCombo() != 0 {
		t.Errorf("Expected initial combo 0, got %d", gs.GetCombo())
	}
	if gs.GetLessonIndex() != -1 {
		t.Errorf("Expected lesson index -1, got %d", gs.GetLessonIndex())
	}
	if gs.GetStoryIndex() != 0 {
		t.Errorf("Expected story index 0, got %d", gs.GetStoryIndex())
	}
	if gs.GetPlaying() {
		t.Error("Expected idle state initially")
	}
}

// TestFuelClamping verifies fuel stays within [0, MaxFuel]
func TestFuelClamping(t *testing.T) {
	gs := NewGameState()

	gs.AddFuelClamped(250)
	if got := gs.GetFuel(); got != constants.MaxFuel {
		t.Errorf("Expected fuel clamped to %d, got %d", constants.MaxFuel, got)
	}

	gs.AddFuelClamped(-500)
	if got := gs.GetFuel(); got != 0 {
		t.Errorf("Expected fuel clamped to 0, got %d", got)
	}

	gs.SetFuel(150)
	if got := gs.GetFuel(); got != constants.MaxFuel {
		t.Errorf("Expected SetFuel clamped to %d, got %d", constants.MaxFuel, got)
	}
	gs.SetFuel(-5)
	if got := gs.GetFuel(); got != 0 {
		t.Errorf("Expected SetFuel clamped to 0, got %d", got)
	}
}

// TestScoreOperationsAtomic tests concurrent score updates
func TestScoreOperationsAtomic(t *testing.T) {
	gs := NewGameState()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				gs.AddScore(1)
			}
		}()
	}
	wg.Wait()

	if got := gs.GetScore(); got != 100 {
		t.Errorf("Expected score 100, got %d", got)
	}
}

// TestExpectedNoteQueue verifies peek/pop semantics
func TestExpectedNoteQueue(t *testing.T) {
	gs := NewGameState()
	gs.ActivateLesson(0, []string{"C4", "D4"})

	head, ok := gs.PeekExpected()
	if !ok || head != "C4" {
		t.Errorf("Expected head C4, got %q ok=%v", head, ok)
	}
	// Peek does not consume
	if gs.ExpectedCount() != 2 {
		t.Errorf("Expected 2 remaining after peek, got %d", gs.ExpectedCount())
	}

	if left := gs.PopExpected(); left != 1 {
		t.Errorf("Expected 1 remaining after pop, got %d", left)
	}
	if left := gs.PopExpected(); left != 0 {
		t.Errorf("Expected 0 remaining, got %d", left)
	}
	if left := gs.PopExpected(); left != 0 {
		t.Errorf("Expected pop on empty queue to stay 0, got %d", left)
	}
}

// TestAdvanceStoryIndexClamp verifies the monotonic clamped pointer
func TestAdvanceStoryIndexClamp(t *testing.T) {
	gs := NewGameState()

	for i := 1; i <= 3; i++ {
		idx, moved := gs.AdvanceStoryIndex(3)
		if !moved || idx != i {
			t.Errorf("Step %d: expected moved index %d, got %d moved=%v", i, i, idx, moved)
		}
	}
	idx, moved := gs.AdvanceStoryIndex(3)
	if moved || idx != 3 {
		t.Errorf("Expected clamp at 3, got %d moved=%v", idx, moved)
	}
}

// TestProgressSnapshotIsCopy verifies renderers cannot mutate the queue
func TestProgressSnapshotIsCopy(t *testing.T) {
	gs := NewGameState()
	gs.ActivateLesson(0, []string{"C4", "D4"})

	snap := gs.ReadProgress()
	snap.Remaining[0] = "mutated"

	if head, _ := gs.PeekExpected(); head != "C4" {
		t.Errorf("Snapshot mutation leaked into state: head = %q", head)
	}
	if snap.NextNote != "C4" {
		t.Errorf("Expected snapshot next note C4, got %q", snap.NextNote)
	}
}

// TestLitNoteLifecycle verifies set and unconditional clear
func TestLitNoteLifecycle(t *testing.T) {
	gs := NewGameState()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	gs.SetLitNote("G4", now)
	if kb := gs.ReadKeyboard(); kb.LitNote != "G4" || !kb.LitSince.Equal(now) {
		t.Errorf("Expected G4 lit at %v, got %q at %v", now, kb.LitNote, kb.LitSince)
	}

	gs.ClearLitNote()
	if kb := gs.ReadKeyboard(); kb.LitNote != "" {
		t.Errorf("Expected cleared lit note, got %q", kb.LitNote)
	}
}

// TestToggleEffectsMuted verifies the mute flag flips
func TestToggleEffectsMuted(t *testing.T) {
	gs := NewGameState()
	if !gs.ToggleEffectsMuted() {
		t.Error("Expected mute on after first toggle")
	}
	if gs.ToggleEffectsMuted() {
		t.Error("Expected mute off after second toggle")
	}
}
