package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/content"
)

// StoryPanelRenderer draws the title and the current line of the
// mission narrative at the top of the screen.
type StoryPanelRenderer struct{}

func NewStoryPanelRenderer() *StoryPanelRenderer {
	return &StoryPanelRenderer{}
}

func (r *StoryPanelRenderer) Name() string {
	return "story-panel"
}

const gameTitle = "* ROCKET PIANO *"

func (r *StoryPanelRenderer) Render(ctx *Context) {
	layout := ComputeLayout(ctx.Height)
	snap := ctx.State.ReadProgress()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	titleX := (ctx.Width - len(gameTitle)) / 2
	if titleX < 0 {
		titleX = 0
	}
	drawText(ctx.Screen, titleX, layout.StoryY, ctx.Width, gameTitle, titleStyle)

	storyStyle := tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	line := ""
	total := content.StoryLength()
	if snap.StoryIndex < total {
		line = content.StoryLineAt(snap.StoryIndex)
	} else if total > 0 {
		line = content.StoryLineAt(total - 1)
	}
	drawText(ctx.Screen, 2, layout.StoryY+1, ctx.Width, line, storyStyle)

	// Progress dots show how far the briefing has advanced
	dotStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	doneStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i := 0; i < total; i++ {
		style := dotStyle
		if i <= snap.StoryIndex {
			style = doneStyle
		}
		ctx.Screen.SetContent(2+i*2, layout.StoryY+2, '●', nil, style)
	}
}
