package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/constants"
	"github.com/lixenwraith/rocket-piano/engine"
)

// RenderPriority orders renderer execution, lower runs first
type RenderPriority int

const (
	PriorityBackground RenderPriority = 100
	PriorityPanels     RenderPriority = 400
	PriorityOverlay    RenderPriority = 500
)

// Context carries everything a renderer needs for one frame
type Context struct {
	Screen tcell.Screen
	Width  int
	Height int
	Now    time.Time
	Frame  int64

	State *engine.GameState
}

// Layout is the fixed panel arrangement, recomputed on resize
type Layout struct {
	StoryY    int // title/story panel top row
	StatsY    int // stats panel top row
	SpaceY    int // animation area top row
	SpaceH    int // animation area height
	LessonY   int // lesson panel top row
	KeyboardY int // keyboard top row
	StatusY   int // status bar row
}

// ComputeLayout arranges the panels top to bottom: story, stats,
// animation (all remaining rows), lesson, keyboard, status bar.
func ComputeLayout(height int) Layout {
	l := Layout{
		StoryY: 0,
		StatsY: constants.StoryPanelHeight,
	}
	l.SpaceY = l.StatsY + constants.StatsPanelHeight

	bottom := constants.LessonPanelHeight + constants.KeyboardHeight + constants.StatusBarHeight
	l.SpaceH = height - l.SpaceY - bottom
	if l.SpaceH < 0 {
		l.SpaceH = 0
	}

	l.LessonY = l.SpaceY + l.SpaceH
	l.KeyboardY = l.LessonY + constants.LessonPanelHeight
	l.StatusY = l.KeyboardY + constants.KeyboardHeight
	return l
}

// drawText writes a string clipped to the screen width
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// fillRow paints one full row with the given rune and style
func fillRow(s tcell.Screen, y, width int, r rune, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, r, nil, style)
	}
}
