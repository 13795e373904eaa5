package render

import (
	"fmt"
	"image/color"
)

// Background is the canvas fill colour.
var Background = color.RGBA{0, 0, 0, 0xff}

var palette = [...]color.RGBA{
	ColorPlayer:     {0xff, 0xff, 0xff, 0xff},
	ColorEnemyA:     {0xc0, 0xc0, 0xc0, 0xff},
	ColorEnemyB:     {0x40, 0x40, 0x40, 0xff},
	ColorPlayerShot: {0x80, 0x80, 0x80, 0xff},
	ColorEnemyShot:  {0xff, 0x00, 0x00, 0xff},
}

// RGBA is the reference colour for a tag. Unknown tags paint white.
func (c ColorTag) RGBA() color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

// HUD is the one-line status shown while a round is running.
func HUD(f *Frame) string {
	return fmt.Sprintf("Lives: %d  Kills: %d", f.Lives, f.Kills)
}

// MessageY is the baseline of end-screen line i: the first line sits 50px
// above the vertical centre, the next on the centre.
func MessageY(canvasHeight, i int) int {
	return canvasHeight/2 - 50 + i*50
}

// CellSpan maps a drawable onto a character grid where each cell covers
// cellW x cellH canvas pixels. The span is half-open ([c0,c1) x [r0,r1)) and
// always at least one cell, so thin shots stay visible.
func CellSpan(d Drawable, cellW, cellH int) (c0, r0, c1, r1 int) {
	c0, r0 = floorDiv(d.X, cellW), floorDiv(d.Y, cellH)
	c1 = ceilDiv(d.X+d.Width, cellW)
	r1 = ceilDiv(d.Y+d.Height, cellH)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
