package content

// Lesson is one teaching unit: an ordered note sequence the player must
// reproduce, with a fuel reward on completion. Lessons are immutable and
// consumed strictly in catalog order.
type Lesson struct {
	Name        string
	Instruction string
	Notes       []string // symbolic note names, repeats allowed
	Reward      int      // fuel awarded on completion, 0-100
}
