package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/events"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorNote   // resolves through the note catalog
	BehaviorSystem // reserved control key
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Intent   events.EventType
}

// KeyTable maps keys to behaviors. Runes not present fall through to the
// note catalog; unbound runes are ignored.
type KeyTable struct {
	// Special keys (Ctrl+*, escape, enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Reserved control runes
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {BehaviorSystem, events.EventQuit},
			tcell.KeyCtrlC:  {BehaviorSystem, events.EventQuit},
			tcell.KeyEscape: {BehaviorSystem, events.EventQuit},
			tcell.KeyCtrlS:  {BehaviorSystem, events.EventToggleMute},
			tcell.KeyEnter:  {BehaviorSystem, events.EventStartLesson},
		},

		Runes: map[rune]KeyEntry{
			' ': {BehaviorSystem, events.EventAdvanceStory},
		},
	}
}
