package render

import (
	"github.com/gdamore/tcell/v2"
)

// StatusBarRenderer draws the bottom help row with control hints,
// the mute indicator, and the degraded-audio notice when present.
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

func (r *StatusBarRenderer) Name() string {
	return "status-bar"
}

const controlsHelp = "SPACE story | ENTER lesson | ^S mute | ^Q quit"

func (r *StatusBarRenderer) Render(ctx *Context) {
	layout := ComputeLayout(ctx.Height)
	fb := ctx.State.ReadFeedback()

	barStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	fillRow(ctx.Screen, layout.StatusY, ctx.Width, ' ', barStyle)
	drawText(ctx.Screen, 1, layout.StatusY, ctx.Width, controlsHelp, barStyle)

	x := len(controlsHelp) + 3
	if fb.EffectsMuted {
		muteStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkBlue)
		drawText(ctx.Screen, x, layout.StatusY, ctx.Width, "[MUTED]", muteStyle)
		x += 9
	}
	if fb.AudioNotice != "" {
		noticeStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange).Background(tcell.ColorDarkBlue)
		drawText(ctx.Screen, x, layout.StatusY, ctx.Width, fb.AudioNotice, noticeStyle)
	}
}
