package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/constants"
)

// StatsPanelRenderer draws score, combo, and the segmented fuel gauge.
type StatsPanelRenderer struct{}

func NewStatsPanelRenderer() *StatsPanelRenderer {
	return &StatsPanelRenderer{}
}

func (r *StatsPanelRenderer) Name() string {
	return "stats-panel"
}

// fuelSegmentColor shades the gauge from red through yellow to green
func fuelSegmentColor(segment, filled int) tcell.Color {
	if segment >= filled {
		return tcell.ColorDarkSlateGray
	}
	switch {
	case filled <= constants.FuelBarSegments*3/10:
		return tcell.ColorRed
	case filled <= constants.FuelBarSegments*6/10:
		return tcell.ColorYellow
	default:
		return tcell.ColorGreen
	}
}

func (r *StatsPanelRenderer) Render(ctx *Context) {
	layout := ComputeLayout(ctx.Height)
	snap := ctx.State.ReadProgress()

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	valueStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)

	y := layout.StatsY
	drawText(ctx.Screen, 2, y, ctx.Width, "SCORE", labelStyle)
	drawText(ctx.Screen, 8, y, ctx.Width, fmt.Sprintf("%6d", snap.Score), valueStyle)

	comboStyle := labelStyle
	if snap.Combo > 1 {
		comboStyle = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	}
	drawText(ctx.Screen, 18, y, ctx.Width, fmt.Sprintf("COMBO x%d", snap.Combo), comboStyle)

	// Fuel gauge: one block per segment, shaded by fill level
	filled := snap.Fuel * constants.FuelBarSegments / constants.MaxFuel
	drawText(ctx.Screen, 2, y+1, ctx.Width, "FUEL", labelStyle)
	barX := 8
	for i := 0; i < constants.FuelBarSegments; i++ {
		style := tcell.StyleDefault.Foreground(fuelSegmentColor(i, filled))
		glyph := '█'
		if i >= filled {
			glyph = '░'
		}
		ctx.Screen.SetContent(barX+i, y+1, glyph, nil, style)
	}
	drawText(ctx.Screen, barX+constants.FuelBarSegments+1, y+1, ctx.Width,
		fmt.Sprintf("%3d%%", snap.Fuel), labelStyle)

	if snap.Fuel >= constants.MaxFuel {
		readyStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		drawText(ctx.Screen, barX+constants.FuelBarSegments+7, y+1, ctx.Width, "READY FOR LAUNCH", readyStyle)
	}
}
