package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/events"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func consumeOne(t *testing.T, q *events.EventQueue) events.GameEvent {
	t.Helper()
	got := q.Consume()
	if len(got) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(got))
	}
	return got[0]
}

// TestNoteKeyProducesNoteEvent verifies bound runes resolve to notes
func TestNoteKeyProducesNoteEvent(t *testing.T) {
	q := events.NewEventQueue()
	h := NewHandler(q)

	h.HandleEvent(keyEvent(tcell.KeyRune, 'g'))

	ev := consumeOne(t, q)
	if ev.Type != events.EventNotePlayed {
		t.Fatalf("Expected note event, got %d", ev.Type)
	}
	if ev.Note.Name != "G4" {
		t.Errorf("Expected G4, got %s", ev.Note.Name)
	}
}

// TestUpperCaseNoteKey verifies case-insensitive note resolution
func TestUpperCaseNoteKey(t *testing.T) {
	q := events.NewEventQueue()
	h := NewHandler(q)

	h.HandleEvent(keyEvent(tcell.KeyRune, 'G'))

	ev := consumeOne(t, q)
	if ev.Note.Name != "G4" {
		t.Errorf("Expected G4 from upper-case key, got %s", ev.Note.Name)
	}
}

// TestControlKeys verifies the reserved bindings
func TestControlKeys(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want events.EventType
	}{
		{"space advances story", keyEvent(tcell.KeyRune, ' '), events.EventAdvanceStory},
		{"enter starts lesson", keyEvent(tcell.KeyEnter, 0), events.EventStartLesson},
		{"escape quits", keyEvent(tcell.KeyEscape, 0), events.EventQuit},
		{"ctrl-q quits", keyEvent(tcell.KeyCtrlQ, 0), events.EventQuit},
		{"ctrl-s toggles mute", keyEvent(tcell.KeyCtrlS, 0), events.EventToggleMute},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := events.NewEventQueue()
			h := NewHandler(q)
			h.HandleEvent(tc.ev)
			if ev := consumeOne(t, q); ev.Type != tc.want {
				t.Errorf("Expected event type %d, got %d", tc.want, ev.Type)
			}
		})
	}
}

// TestUnboundKeyIgnored verifies unbound runes produce nothing
func TestUnboundKeyIgnored(t *testing.T) {
	q := events.NewEventQueue()
	h := NewHandler(q)

	h.HandleEvent(keyEvent(tcell.KeyRune, 'z'))
	h.HandleEvent(keyEvent(tcell.KeyF1, 0))

	if got := q.Consume(); got != nil {
		t.Errorf("Expected no events for unbound keys, got %d", len(got))
	}
}

// TestResizeEvent verifies terminal resize translation
func TestResizeEvent(t *testing.T) {
	q := events.NewEventQueue()
	h := NewHandler(q)

	h.HandleEvent(tcell.NewEventResize(120, 40))

	ev := consumeOne(t, q)
	if ev.Type != events.EventResize {
		t.Fatalf("Expected resize event, got %d", ev.Type)
	}
	if ev.Width != 120 || ev.Height != 40 {
		t.Errorf("Expected 120x40, got %dx%d", ev.Width, ev.Height)
	}
}
