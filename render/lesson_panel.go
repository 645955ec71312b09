package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/content"
	"github.com/lixenwraith/rocket-piano/engine"
)

// LessonPanelRenderer draws the active lesson, the queue of notes
// still to play, and the latest feedback message.
type LessonPanelRenderer struct{}

func NewLessonPanelRenderer() *LessonPanelRenderer {
	return &LessonPanelRenderer{}
}

func (r *LessonPanelRenderer) Name() string {
	return "lesson-panel"
}

func feedbackStyle(kind engine.FeedbackKind) tcell.Style {
	switch kind {
	case engine.FeedbackSuccess:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case engine.FeedbackError:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

func (r *LessonPanelRenderer) Render(ctx *Context) {
	layout := ComputeLayout(ctx.Height)
	snap := ctx.State.ReadProgress()
	fb := ctx.State.ReadFeedback()

	y := layout.LessonY
	fillRow(ctx.Screen, y, ctx.Width, '─', tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray))

	nameStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if snap.LessonIndex >= 0 && snap.LessonIndex < content.LessonCount() {
		lesson, _ := content.LessonAt(snap.LessonIndex)
		header := fmt.Sprintf(" LESSON %d/%d: %s ", snap.LessonIndex+1, content.LessonCount(), lesson.Name)
		drawText(ctx.Screen, 2, y, ctx.Width, header, nameStyle)
		if snap.Playing {
			drawText(ctx.Screen, 2, y+1, ctx.Width, lesson.Instruction,
				tcell.StyleDefault.Foreground(tcell.ColorLightCyan))
		}
	} else {
		drawText(ctx.Screen, 2, y, ctx.Width, " FREE PLAY ", nameStyle)
	}

	r.drawNoteQueue(ctx, y+2, snap)

	drawText(ctx.Screen, 2, y+3, ctx.Width, fb.Message, feedbackStyle(fb.Kind))
}

// drawNoteQueue lists the remaining notes with the next one highlighted
func (r *LessonPanelRenderer) drawNoteQueue(ctx *Context, y int, snap engine.ProgressSnapshot) {
	if !snap.Playing || len(snap.Remaining) == 0 {
		return
	}

	nextStyle := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorYellow).
		Bold(true)
	restStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	x := 2
	drawText(ctx.Screen, x, y, ctx.Width, "PLAY:", tcell.StyleDefault.Foreground(tcell.ColorWhite))
	x += 6
	for i, name := range snap.Remaining {
		style := restStyle
		if i == 0 {
			style = nextStyle
		}
		drawText(ctx.Screen, x, y, ctx.Width, " "+name+" ", style)
		x += len(name) + 3
		if x >= ctx.Width {
			break
		}
	}
}
