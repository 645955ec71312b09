package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/events"
	"github.com/lixenwraith/rocket-piano/music"
)

// Handler translates terminal events into game intents and pushes them
// onto the event queue. It runs on the poll goroutine; the queue carries
// the intents to the single-consumer game loop.
type Handler struct {
	table *KeyTable
	queue *events.EventQueue
}

// NewHandler creates an input handler with default bindings
func NewHandler(queue *events.EventQueue) *Handler {
	return &Handler{
		table: DefaultKeyTable(),
		queue: queue,
	}
}

// HandleEvent translates one tcell event. Unbound keys are ignored.
func (h *Handler) HandleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(tev)
	case *tcell.EventResize:
		w, hgt := tev.Size()
		h.queue.Push(events.GameEvent{
			Type:      events.EventResize,
			Width:     w,
			Height:    hgt,
			Timestamp: time.Now(),
		})
	}
}

func (h *Handler) handleKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		if entry, ok := h.table.SpecialKeys[ev.Key()]; ok && entry.Behavior == BehaviorSystem {
			h.queue.Push(events.GameEvent{Type: entry.Intent, Timestamp: ev.When()})
		}
		return
	}

	r := ev.Rune()
	if entry, ok := h.table.Runes[r]; ok && entry.Behavior == BehaviorSystem {
		h.queue.Push(events.GameEvent{Type: entry.Intent, Timestamp: ev.When()})
		return
	}

	if note, ok := music.FromKey(r); ok {
		h.queue.Push(events.GameEvent{
			Type:      events.EventNotePlayed,
			Note:      note,
			Timestamp: ev.When(),
		})
	}
}
