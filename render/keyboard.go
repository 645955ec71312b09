package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/constants"
	"github.com/lixenwraith/rocket-piano/music"
)

// KeyboardRenderer draws the one-octave piano with its key bindings
// and flashes whichever key was just struck.
type KeyboardRenderer struct{}

func NewKeyboardRenderer() *KeyboardRenderer {
	return &KeyboardRenderer{}
}

func (r *KeyboardRenderer) Name() string {
	return "keyboard"
}

var whiteNotes = []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"}

// blackAfter maps a white key index to the sharp drawn on its right edge
var blackAfter = map[int]string{
	0: "C#4",
	1: "D#4",
	3: "F#4",
	4: "G#4",
	5: "A#4",
}

func (r *KeyboardRenderer) Render(ctx *Context) {
	layout := ComputeLayout(ctx.Height)
	lit := ctx.State.ReadKeyboard().LitNote

	keyboardW := len(whiteNotes) * constants.WhiteKeyWidth
	startX := (ctx.Width - keyboardW) / 2
	if startX < 0 {
		startX = 0
	}
	top := layout.KeyboardY
	bodyH := constants.KeyboardHeight - 1
	blackH := bodyH / 2

	whiteStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	litWhiteStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)

	for i, name := range whiteNotes {
		style := whiteStyle
		if name == lit {
			style = litWhiteStyle
		}
		x := startX + i*constants.WhiteKeyWidth
		for row := 0; row < bodyH; row++ {
			for col := 0; col < constants.WhiteKeyWidth-1; col++ {
				ctx.Screen.SetContent(x+col, top+row, ' ', nil, style)
			}
			ctx.Screen.SetContent(x+constants.WhiteKeyWidth-1, top+row, '│', nil,
				tcell.StyleDefault.Foreground(tcell.ColorGray))
		}
		r.drawKeyLabel(ctx, x, top+bodyH-1, name, style)
	}

	blackStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	litBlackStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange)

	for i, name := range blackAfter {
		style := blackStyle
		if name == lit {
			style = litBlackStyle
		}
		x := startX + (i+1)*constants.WhiteKeyWidth - 2
		for row := 0; row < blackH; row++ {
			ctx.Screen.SetContent(x, top+row, ' ', nil, style)
			ctx.Screen.SetContent(x+1, top+row, ' ', nil, style)
		}
		// Sharp binding letter on the bottom row of the black key
		if note, ok := music.ByName(name); ok {
			ctx.Screen.SetContent(x, top+blackH-1, note.Key, nil, style)
		}
	}

	// Binding hint row under the keyboard
	hintY := top + bodyH
	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, name := range whiteNotes {
		if note, ok := music.ByName(name); ok {
			x := startX + i*constants.WhiteKeyWidth + 1
			ctx.Screen.SetContent(x, hintY, note.Key, nil, hintStyle)
		}
	}
}

// drawKeyLabel prints the note name at the base of a white key
func (r *KeyboardRenderer) drawKeyLabel(ctx *Context, x, y int, name string, style tcell.Style) {
	label := strings.TrimSuffix(name, "4")
	label = strings.TrimSuffix(label, "5")
	for i, ch := range label {
		ctx.Screen.SetContent(x+i, y, ch, nil, style)
	}
}
