package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/constants"
)

// StarfieldRenderer draws the scrolling space backdrop and the rocket
// whose altitude tracks the current fuel level.
type StarfieldRenderer struct {
	layout Layout
}

func NewStarfieldRenderer() *StarfieldRenderer {
	return &StarfieldRenderer{}
}

func (r *StarfieldRenderer) Name() string {
	return "starfield"
}

var starGlyphs = []rune{'.', '.', '.', '+', '*'}

// starAt decides deterministically whether a cell holds a star.
// Splitmix-style hash keeps the field stable as it scrolls.
func starAt(x, y int64) (rune, bool) {
	h := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0xBF58476D1CE4E5B9
	h ^= h >> 31
	h *= 0x94D049BB133111EB
	h ^= h >> 29

	threshold := uint64(constants.StarDensity * float64(^uint64(0)>>1))
	if h>>1 >= threshold {
		return 0, false
	}
	return starGlyphs[h%uint64(len(starGlyphs))], true
}

var rocketArt = []string{
	`  /\  `,
	` |==| `,
	` |##| `,
	`/_/\_\`,
}

func (r *StarfieldRenderer) Render(ctx *Context) {
	r.layout = ComputeLayout(ctx.Height)
	if r.layout.SpaceH <= 0 {
		return
	}

	// Scroll one column per StarScrollInterval worth of frames.
	scrollFrames := int64(constants.StarScrollInterval / constants.FrameUpdateInterval)
	if scrollFrames < 1 {
		scrollFrames = 1
	}
	offset := ctx.Frame / scrollFrames

	starStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	brightStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for row := 0; row < r.layout.SpaceH; row++ {
		y := r.layout.SpaceY + row
		for x := 0; x < ctx.Width; x++ {
			glyph, ok := starAt(int64(x)+offset, int64(y))
			if !ok {
				continue
			}
			style := starStyle
			if glyph == '*' {
				style = brightStyle
			}
			ctx.Screen.SetContent(x, y, glyph, nil, style)
		}
	}

	r.drawRocket(ctx)
}

// drawRocket places the ship in the animation band, bottom at zero
// fuel, top at full tank.
func (r *StarfieldRenderer) drawRocket(ctx *Context) {
	fuel := ctx.State.GetFuel()
	artH := len(rocketArt)
	travel := r.layout.SpaceH - artH
	if travel < 0 {
		return
	}

	top := r.layout.SpaceY + travel - travel*fuel/constants.MaxFuel
	x := 4
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	for i, line := range rocketArt {
		drawText(ctx.Screen, x, top+i, ctx.Width, line, style)
	}

	// Exhaust flicker while there is fuel aboard
	if fuel > 0 && top+artH < r.layout.SpaceY+r.layout.SpaceH {
		flame := '^'
		if ctx.Frame%2 == 0 {
			flame = 'v'
		}
		flameStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange)
		ctx.Screen.SetContent(x+2, top+artH, flame, nil, flameStyle)
		ctx.Screen.SetContent(x+3, top+artH, flame, nil, flameStyle)
	}
}
